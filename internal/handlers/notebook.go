package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rkondo/realrent/internal/metrics"
	"github.com/rkondo/realrent/internal/middleware"
	"github.com/rkondo/realrent/internal/notebook"
	"github.com/rkondo/realrent/internal/repo"
)

// ==========================
// NotebookHandler
// ==========================
type NotebookHandler struct {
	Runner *notebook.Runner
	Audit  *repo.AuditRepo
}

// ==========================
// Run Line Search
// ==========================

// RunNotebook executes the line-search notebook for the requested train line
// and returns the collected text output. The run is synchronous; the runner's
// timeout bounds it.
func (h *NotebookHandler) RunNotebook(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Line string `json:"line"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	line := strings.TrimSpace(input.Line)
	if line == "" {
		JSONError(w, "line is required", http.StatusBadRequest)
		return
	}

	metrics.IncNotebookRunsRunning()
	defer metrics.DecNotebookRunsRunning()

	result, err := h.Runner.Run(r.Context(), line)
	if err != nil {
		metrics.IncNotebookRunsTotal("error")
		var execErr *notebook.ExecutionError
		if errors.As(err, &execErr) {
			slog.Error("notebook run failed", "line", line, "detail", execErr.Detail)
			JSONErrorDetail(w, "notebook execution failed", execErr.Detail, http.StatusInternalServerError)
			return
		}
		slog.Error("notebook run failed", "line", line, "err", err)
		JSONErrorDetail(w, ErrMessageInternal, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.IncNotebookRunsTotal("ok")

	if h.Audit != nil {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			_ = h.Audit.Log(r.Context(), userID, "run", "notebook", 0, line)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"result": result})
}
