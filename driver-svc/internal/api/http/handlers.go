package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quickbite/driver-svc/internal/domain"
	"quickbite/driver-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Drivers service.DriverServiceInterface
}

func NewHandler(drivers service.DriverServiceInterface) *Handler {
	return &Handler{Drivers: drivers}
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

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var driver domain.Driver
	if err := json.NewDecoder(r.Body).Decode(&driver); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Drivers.Register(&driver); err != nil {
		if errors.Is(err, service.ErrInvalidDriver) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(driver)
}

func (h *Handler) listDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Drivers.ListDrivers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(drivers)
}

func (h *Handler) getDriverDetails(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])

	driver, err := h.Drivers.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, service.ErrDriverNotFound) {
			http.Error(w, "Driver not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(driver)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	driverID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var status domain.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Drivers.SetAvailability(driverID, status); err != nil {
		if errors.Is(err, service.ErrDriverNotFound) {
			http.Error(w, "Driver not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) payout(w http.ResponseWriter, r *http.Request) {
	driverID, _ := strconv.Atoi(mux.Vars(r)["id"])

	salary, err := h.Drivers.PayoutAll(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDriverNotFound):
			http.Error(w, "Driver not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNothingToPay):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(salary)
}

func (h *Handler) adminOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Drivers.AdminOverview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overview)
}

func (h *Handler) adminSalaries(w http.ResponseWriter, r *http.Request) {
	salaries, err := h.Drivers.ListSalaries()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(salaries)
}

func (h *Handler) markSalaryPaid(w http.ResponseWriter, r *http.Request) {
	salaryID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Drivers.MarkSalaryPaid(salaryID); err != nil {
		if errors.Is(err, service.ErrSalaryNotFound) {
			http.Error(w, "Salary record not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// claim serves order-svc's assignment step.
func (h *Handler) claim(w http.ResponseWriter, r *http.Request) {
	var req domain.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid claim payload: "+err.Error())
		return
	}

	if err := h.Drivers.Claim(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderTaken):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrDriverNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"result": "claimed"})
}

// creditEarnings serves order-svc's completion commission.
func (h *Handler) creditEarnings(w http.ResponseWriter, r *http.Request) {
	var req domain.EarningsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid earnings payload: "+err.Error())
		return
	}

	if err := h.Drivers.Credit(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"result": "credited"})
}
