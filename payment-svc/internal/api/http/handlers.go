package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quickbite/payment-svc/internal/domain"
	"quickbite/payment-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Payments service.PaymentServiceInterface
}

func NewHandler(payments service.PaymentServiceInterface) *Handler {
	return &Handler{Payments: payments}
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

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) {
	var req domain.AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment payload: "+err.Error())
		return
	}

	payment, err := h.Payments.Authorize(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPayment), errors.Is(err, service.ErrAmountMismatch):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotOrderOwner), errors.Is(err, service.ErrAlreadyPaid):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrUpstream):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeSuccess(w, http.StatusCreated, payment)
}

func (h *Handler) getByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])

	payment, err := h.Payments.GetByOrder(orderID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			http.Error(w, "Payment not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payment)
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || userID <= 0 {
		http.Error(w, "user_id query parameter is required", http.StatusBadRequest)
		return
	}

	payments, err := h.Payments.ListByUser(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}
