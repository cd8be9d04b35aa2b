package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId}/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/menu-items/{menuId}/stock", h.updateMenuStock).Methods("PUT")
	r.HandleFunc("/menu-items/{menuId}/availability", h.updateMenuAvailability).Methods("PUT")

	r.HandleFunc("/internal/menu-items/reduce-stock", h.reduceStock).Methods("POST")
	r.HandleFunc("/internal/menu-items/{id}", h.getMenuItemInternal).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
