package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quickbite/catalog-svc/internal/domain"
	"quickbite/catalog-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface) *Handler {
	return &Handler{Catalog: catalog}
}

// envelope is the uniform shape of internal service-to-service responses.
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

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	restaurant, err := h.Catalog.GetRestaurant(id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = restaurantID

	if err := h.Catalog.CreateMenuItem(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func (h *Handler) updateMenuStock(w http.ResponseWriter, r *http.Request) {
	menuID, _ := strconv.Atoi(mux.Vars(r)["menuId"])

	var payload struct {
		Stock int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.UpdateMenuStock(menuID, payload.Stock); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			http.Error(w, "Menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateMenuAvailability(w http.ResponseWriter, r *http.Request) {
	menuID, _ := strconv.Atoi(mux.Vars(r)["menuId"])

	var payload struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.UpdateMenuAvailability(menuID, payload.IsAvailable); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			http.Error(w, "Menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getMenuItemInternal serves order-svc's line validation reads.
func (h *Handler) getMenuItemInternal(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	item, err := h.Catalog.GetMenuItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			writeError(w, http.StatusNotFound, "menu item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, item)
}

func (h *Handler) reduceStock(w http.ResponseWriter, r *http.Request) {
	var req domain.ReserveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation payload: "+err.Error())
		return
	}

	err := h.Catalog.ReserveStock(r.Context(), req)
	if err == nil {
		writeSuccess(w, http.StatusOK, map[string]string{"reservation_id": req.ReservationID})
		return
	}

	var insufficient *service.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		writeError(w, http.StatusConflict, insufficient.Error())
	case errors.Is(err, service.ErrMenuItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidReservation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
