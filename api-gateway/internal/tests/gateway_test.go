package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quickbite/api-gateway/internal/gateway"
	"quickbite/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_StripsAPIPrefix(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: "http://order-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[{"id":7,"status":"PAID"}]`)),
		Header:     make(http.Header),
	}
	mockResp.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://order-svc/orders/7"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/7", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "PAID")
}

func TestGateway_RouteHandler_TrackingKeepsPrefix(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		TrackingSvcURL: "http://tracking-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"order_id":7,"status":"ON_THE_WAY"}`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://tracking-svc/api/tracking/orders/7"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/tracking/orders/7", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ON_THE_WAY")
}

func TestGateway_RouteHandler_BlocksInternalPaths(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	for _, path := range []string{
		"/api/internal/orders/7",
		"/api/internal/menu-items/reduce-stock",
		"/api/internal/drivers/claim",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rr := httptest.NewRecorder()

		gw.RouteHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		PaymentSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/payments/order/7", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_DriverRoutes(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		DriverSvcURL: "http://driver-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(strings.NewReader(`{"id":4}`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://driver-svc/drivers"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/drivers", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}
