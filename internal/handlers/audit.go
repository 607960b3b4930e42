package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rkondo/realrent/internal/repo"
)

const defaultAuditLimit = 50

// AuditHandler serves the recent mutation audit trail.
type AuditHandler struct {
	Repo *repo.AuditRepo
}

// ListAudit returns the newest audit entries. ?limit= caps the page size.
func (h *AuditHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}

	logs, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("list audit logs failed", "err", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items": logs,
		"count": len(logs),
	})
}
