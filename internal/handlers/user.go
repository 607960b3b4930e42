package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rkondo/realrent/internal/repo"
)

// ==========================
// UserHandler
// ==========================
type UserHandler struct {
	Repo *repo.UserRepo
}

// ==========================
// List Users
// ==========================
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

// ==========================
// Get User By Username
// ==========================
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.Repo.GetByUsername(r.Context(), username)
	if err != nil {
		slog.Error("get user failed", "username", username, "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if user == nil {
		JSONError(w, "user not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"user": user})
}
