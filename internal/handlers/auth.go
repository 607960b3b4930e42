package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rkondo/realrent/internal/repo"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Users  *repo.UserRepo
	Audit  *repo.AuditRepo
	Secret []byte
	// ExpireHours is the issued token lifetime.
	ExpireHours int
}

// ==========================
// Register
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)

	fields := make(map[string]string)
	switch {
	case username == "":
		fields["username"] = "username is required"
	case len([]rune(username)) < minUsernameLen:
		fields["username"] = "username must be at least 3 characters"
	}
	switch {
	case password == "":
		fields["password"] = "password is required"
	case len(password) < minPasswordLen:
		fields["password"] = "password must be at least 6 characters"
	}
	if len(fields) > 0 {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	user, err := h.Users.Create(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("register failed", "username", username, "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Log(r.Context(), user.ID, "register", "user", user.ID, "")
	}

	slog.Info("user registered", "username", user.Username, "user_id", user.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "registration complete",
		"user":    user,
	})
}

// ==========================
// Login (same response for unknown username and wrong password)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)

	fields := make(map[string]string)
	if username == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	user, err := h.Users.Verify(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			JSONError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		slog.Error("login failed", "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Duration(h.ExpireHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		JSONError(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "login successful",
		"token":   signed,
		"user":    user,
	})
}
