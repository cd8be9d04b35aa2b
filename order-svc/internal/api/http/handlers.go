package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quickbite/order-svc/internal/domain"
	"quickbite/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orders service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orders}
}

type envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeSuccess(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(envelope{Status: "success", Data: data})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(envelope{Status: "error", Message: message})
}

// callerID reads the authenticated user from the gateway-set header.
func callerID(r *http.Request) int {
	id, _ := strconv.Atoi(r.Header.Get("X-User-ID"))
	return id
}

func mapServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrNoQRCode):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrAlreadyClaimed),
		errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrInsufficientStock):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUpstream):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		req.UserID = callerID(r)
	}

	order, err := h.Orders.CreateOrder(r.Context(), req)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.ConfirmPayment(r.Context(), orderID, callerID(r), payload.PaymentMethod)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) claimOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		UserID int `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.UserID == 0 {
		payload.UserID = callerID(r)
	}

	if err := h.Orders.ClaimOrder(r.Context(), orderID, payload.UserID); err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"result": "claimed"})
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		UserID int `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.UserID == 0 {
		payload.UserID = callerID(r)
	}

	if err := h.Orders.CompleteOrder(r.Context(), orderID, payload.UserID); err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"result": "delivered"})
}

func (h *Handler) confirmReceived(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Orders.ConfirmReceived(r.Context(), orderID, callerID(r)); err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"result": "completed"})
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Orders.CancelOrder(r.Context(), orderID, callerID(r)); err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"result": "cancelled"})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || userID <= 0 {
		userID = callerID(r)
	}
	if userID <= 0 {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	orders, err := h.Orders.ListUserOrders(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.GetOrderDetail(r.Context(), orderID, callerID(r))
	if err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) listDriverOrders(w http.ResponseWriter, r *http.Request) {
	driverUserID, _ := strconv.Atoi(mux.Vars(r)["driverId"])

	orders, err := h.Orders.ListDriverOrders(driverUserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *Handler) getOrderQR(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	png, err := h.Orders.GetOrderQR(orderID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// getOrderInternal serves payment-svc's ownership and amount checks.
func (h *Handler) getOrderInternal(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.GetOrderRecord(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, order)
}
