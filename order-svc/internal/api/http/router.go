package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/orders/driver/{driverId}", h.listDriverOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/pay", h.payOrder).Methods("POST")
	r.HandleFunc("/orders/{id}/claim", h.claimOrder).Methods("POST")
	r.HandleFunc("/orders/{id}/complete", h.completeOrder).Methods("POST")
	r.HandleFunc("/orders/{id}/confirm-received", h.confirmReceived).Methods("POST")
	r.HandleFunc("/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/orders/{id}/qrcode", h.getOrderQR).Methods("GET")

	r.HandleFunc("/internal/orders/{id}", h.getOrderInternal).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
