package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"quickbite/order-svc/internal/service"
)

type PaymentClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewPaymentClient(baseURL string, httpClient *http.Client) *PaymentClient {
	return &PaymentClient{BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *PaymentClient) Authorize(ctx context.Context, orderID, userID int, amount float64, paymentMethod string) (int, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"order_id":       orderID,
		"user_id":        userID,
		"amount":         amount,
		"payment_method": paymentMethod,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/payments/authorize", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
	case http.StatusConflict:
		return 0, service.ErrAlreadyPaid
	case http.StatusBadRequest, http.StatusNotFound:
		var body errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return 0, fmt.Errorf("%w: %s", service.ErrValidation, body.Message)
	default:
		return 0, fmt.Errorf("%w: payment gate returned %d", service.ErrUpstream, resp.StatusCode)
	}

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return 0, fmt.Errorf("%w: %v", service.ErrUpstream, err)
	}
	return envelope.Data.ID, nil
}
