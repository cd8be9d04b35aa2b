// Package clients holds the thin HTTP clients payment-svc uses to talk to
// its upstream services.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"quickbite/payment-svc/internal/domain"
	"quickbite/payment-svc/internal/service"
)

type OrderClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewOrderClient(baseURL string, httpClient *http.Client) *OrderClient {
	return &OrderClient{BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *OrderClient) GetOrder(ctx context.Context, orderID int) (*domain.OrderSummary, error) {
	url := c.BaseURL + "/internal/orders/" + strconv.Itoa(orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, service.ErrOrderNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: order lookup returned %d", service.ErrUpstream, resp.StatusCode)
	}

	var envelope struct {
		Status string              `json:"status"`
		Data   domain.OrderSummary `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	if envelope.Status != "success" {
		return nil, fmt.Errorf("%w: order lookup rejected", service.ErrUpstream)
	}
	return &envelope.Data, nil
}
