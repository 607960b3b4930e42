package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rkondo/realrent/internal/repo"
	"github.com/shopspring/decimal"
)

// ==========================
// PropertyHandler
// ==========================
type PropertyHandler struct {
	Repo  *repo.PropertyRepo
	Audit *repo.AuditRepo
}

// ==========================
// Create Property (every field but the owner is optional)
// ==========================
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID        *int     `json:"user_id"`
		MansionName   *string  `json:"mansion_name"`
		Address       *string  `json:"address"`
		Layout        *string  `json:"layout"`
		Area          *float64 `json:"area"`
		Rent          *int     `json:"rent"`
		TimeToStation *int     `json:"time_to_station"`
		RealRent      *float64 `json:"real_rent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.UserID == nil || *input.UserID == 0 {
		JSONError(w, "user id is required", http.StatusBadRequest)
		return
	}

	property, err := h.Repo.Create(r.Context(), *input.UserID, repo.PropertyInput{
		MansionName:   input.MansionName,
		Address:       input.Address,
		Layout:        input.Layout,
		Area:          nullDecimal(input.Area),
		Rent:          input.Rent,
		TimeToStation: input.TimeToStation,
		RealRent:      nullDecimal(input.RealRent),
	})
	if err != nil {
		if errors.Is(err, repo.ErrUnknownOwner) {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("create property failed", "user_id", *input.UserID, "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Log(r.Context(), property.UserID, "create", "property", property.ID, "")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "property registered",
		"property": property,
	})
}

// ==========================
// List Properties By Owner
// ==========================
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		JSONError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	properties, err := h.Repo.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("list properties failed", "user_id", userID, "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"properties": properties,
		"count":      len(properties),
	})
}

// ==========================
// Delete Property (id + owner, ownership rechecked)
// ==========================
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid property id", http.StatusBadRequest)
		return
	}

	var input struct {
		UserID *int `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if input.UserID == nil || *input.UserID == 0 {
		JSONError(w, "user id is required", http.StatusBadRequest)
		return
	}

	conf, err := h.Repo.Delete(r.Context(), propertyID, *input.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFoundOrForbidden) {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("delete property failed", "property_id", propertyID, "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Log(r.Context(), *input.UserID, "delete", "property", conf.ID, "")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      "property deleted",
		"id":           conf.ID,
		"mansion_name": conf.MansionName,
	})
}

func nullDecimal(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*f), Valid: true}
}
