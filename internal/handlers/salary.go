package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rkondo/realrent/internal/salary"
)

// ==========================
// SalaryHandler (pure computations, no store access)
// ==========================
type SalaryHandler struct{}

// ==========================
// Compute Minute Rate
// ==========================
func (h *SalaryHandler) ComputeMinuteRate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		MonthlyIncome any `json:"monthly_income"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.MonthlyIncome == nil || input.MonthlyIncome == "" {
		JSONError(w, "monthly income is required", http.StatusBadRequest)
		return
	}

	income, err := numberField("monthly income", input.MonthlyIncome)
	if err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := salary.ComputeMinuteRate(income)
	if err != nil {
		var verr *salary.ValidationError
		if errors.As(err, &verr) {
			JSONError(w, verr.Message, http.StatusBadRequest)
			return
		}
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ==========================
// Evaluate Commute Rent
// ==========================
func (h *SalaryHandler) EvaluateCommuteRent(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Rent            any `json:"rent_input"`
		TimeToStation   any `json:"time_to_station"`
		TimeToReference any `json:"time_to_reference"`
		MinuteRate      any `json:"minute_salary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// Missing required fields are reported before type checks so the message
	// stays field-specific.
	if input.Rent == nil {
		JSONError(w, "rent is required", http.StatusBadRequest)
		return
	}
	if input.TimeToStation == nil {
		JSONError(w, "time to the station is required", http.StatusBadRequest)
		return
	}

	rent, err := optionalNumberField("rent", input.Rent)
	if err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	station, err := optionalNumberField("time to the station", input.TimeToStation)
	if err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	reference, err := optionalNumberField("time to the reference station", input.TimeToReference)
	if err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	rate, err := optionalNumberField("minute salary", input.MinuteRate)
	if err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := salary.EvaluateCommuteRent(rent, station, reference, rate)
	if err != nil {
		var verr *salary.ValidationError
		if errors.As(err, &verr) {
			JSONError(w, verr.Message, http.StatusBadRequest)
			return
		}
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
