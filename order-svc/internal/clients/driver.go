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

type DriverClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewDriverClient(baseURL string, httpClient *http.Client) *DriverClient {
	return &DriverClient{BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *DriverClient) Claim(ctx context.Context, driverUserID, orderID int) error {
	resp, err := c.post(ctx, "/internal/drivers/claim", map[string]interface{}{
		"user_id":  driverUserID,
		"order_id": orderID,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		return service.ErrAlreadyClaimed
	case http.StatusNotFound, http.StatusBadRequest:
		var body errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("%w: %s", service.ErrValidation, body.Message)
	default:
		return fmt.Errorf("%w: driver registry returned %d", service.ErrUpstream, resp.StatusCode)
	}
}

func (c *DriverClient) CreditEarnings(ctx context.Context, driverUserID, orderID int, amount float64) error {
	resp, err := c.post(ctx, "/internal/drivers/earnings", map[string]interface{}{
		"user_id":  driverUserID,
		"order_id": orderID,
		"amount":   amount,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: driver registry returned %d", service.ErrUpstream, resp.StatusCode)
	}
	return nil
}

func (c *DriverClient) Details(ctx context.Context, driverUserID int) (*domain.DriverContact, error) {
	url := c.BaseURL + "/drivers/details/" + strconv.Itoa(driverUserID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: driver registry returned %d", service.ErrUpstream, resp.StatusCode)
	}

	var contact domain.DriverContact
	if err := json.NewDecoder(resp.Body).Decode(&contact); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	return &contact, nil
}

func (c *DriverClient) post(ctx context.Context, path string, body map[string]interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	return resp, nil
}
