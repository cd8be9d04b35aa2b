package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quickbite/tracking-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/tracking/orders/{id}", h.getOrderStatus).Methods("GET")
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	status, err := h.Store.GetStatus(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrNotTracked) {
			http.Error(w, "Order not tracked", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tracking-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
