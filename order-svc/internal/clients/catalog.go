// Package clients holds the HTTP clients the order flow drives its
// downstream services with. Every call goes through the injected client and
// its timeout; errors are folded into the service's sentinel taxonomy so the
// flow can decide what is fatal.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"quickbite/order-svc/internal/domain"
	"quickbite/order-svc/internal/service"
)

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CatalogClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewCatalogClient(baseURL string, httpClient *http.Client) *CatalogClient {
	return &CatalogClient{BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *CatalogClient) GetMenuItem(ctx context.Context, id int) (*domain.CatalogItem, error) {
	url := c.BaseURL + "/internal/menu-items/" + strconv.Itoa(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: menu item %d does not exist", service.ErrValidation, id)
	default:
		return nil, fmt.Errorf("%w: catalog returned %d", service.ErrUpstream, resp.StatusCode)
	}

	var envelope struct {
		Status string             `json:"status"`
		Data   domain.CatalogItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	return &envelope.Data, nil
}

func (c *CatalogClient) ReserveStock(ctx context.Context, reservationID string, items []domain.ReserveLine) error {
	payload, err := json.Marshal(map[string]interface{}{
		"reservation_id": reservationID,
		"items":          items,
	})
	if err != nil {
		return err
	}

	url := c.BaseURL + "/internal/menu-items/reduce-stock"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		var body errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("%w: %s", service.ErrInsufficientStock, body.Message)
	case http.StatusNotFound, http.StatusBadRequest:
		var body errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("%w: %s", service.ErrValidation, body.Message)
	default:
		return fmt.Errorf("%w: catalog returned %d", service.ErrUpstream, resp.StatusCode)
	}
}
