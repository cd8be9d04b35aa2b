// Package clients holds the read-only HTTP clients the admin listing uses.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"quickbite/driver-svc/internal/domain"
)

type UserClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewUserClient(baseURL string, httpClient *http.Client) *UserClient {
	return &UserClient{BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *UserClient) ListUsers(ctx context.Context) ([]domain.DirectoryUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/users/all", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user directory returned %d", resp.StatusCode)
	}

	var users []domain.DirectoryUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

type OrderClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewOrderClient(baseURL string, httpClient *http.Client) *OrderClient {
	return &OrderClient{BaseURL: baseURL, HTTPClient: httpClient}
}

// ActiveOrderCount counts the driver's in-flight orders from the order
// service's reconciliation read. Never authoritative for the registry.
func (c *OrderClient) ActiveOrderCount(ctx context.Context, driverUserID int) (int, error) {
	url := c.BaseURL + "/orders/driver/" + strconv.Itoa(driverUserID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("order lookup returned %d", resp.StatusCode)
	}

	var orders []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return 0, err
	}
	return len(orders), nil
}
