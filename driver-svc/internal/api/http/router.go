package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/drivers", h.register).Methods("POST")
	r.HandleFunc("/drivers", h.listDrivers).Methods("GET")
	r.HandleFunc("/drivers/details/{userId}", h.getDriverDetails).Methods("GET")
	r.HandleFunc("/drivers/admin/all", h.adminOverview).Methods("GET")
	r.HandleFunc("/drivers/admin/salaries", h.adminSalaries).Methods("GET")
	r.HandleFunc("/drivers/admin/salaries/{id}/pay", h.markSalaryPaid).Methods("POST")
	r.HandleFunc("/drivers/{id}/status", h.setStatus).Methods("POST")
	r.HandleFunc("/drivers/{id}/payout", h.payout).Methods("POST")

	r.HandleFunc("/internal/drivers/claim", h.claim).Methods("POST")
	r.HandleFunc("/internal/drivers/earnings", h.creditEarnings).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "driver-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
