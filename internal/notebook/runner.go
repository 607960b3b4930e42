package notebook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// parameterName is the variable injected into the notebook's parameters cell.
const parameterName = "selected_line"

// ExecutionError means the notebook process itself failed (bad exit, timeout,
// unparseable output). Detail carries whatever diagnostics the process left.
type ExecutionError struct {
	Detail string
}

func (e *ExecutionError) Error() string {
	return "notebook execution failed: " + e.Detail
}

// Runner executes the parameterized line-search notebook through papermill
// and collects the textual cell outputs. One Run is synchronous and bounded
// by Timeout; there is no cancellation once a run has started.
type Runner struct {
	Papermill string
	Path      string
	Timeout   time.Duration
}

func NewRunner(papermill, path string, timeout time.Duration) *Runner {
	return &Runner{Papermill: papermill, Path: path, Timeout: timeout}
}

// Run injects line as the selected_line parameter, executes the notebook, and
// returns the concatenated text outputs of every cell, trimmed.
func (r *Runner) Run(ctx context.Context, line string) (string, error) {
	if _, err := os.Stat(r.Path); err != nil {
		return "", &ExecutionError{Detail: fmt.Sprintf("notebook not found: %s", r.Path)}
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	// "-" writes the executed notebook to stdout so no output file is left behind.
	cmd := exec.CommandContext(ctx, r.Papermill,
		r.Path, "-",
		"-p", parameterName, line,
		"--log-level", "ERROR",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	slog.Info("notebook run finished",
		"line", line,
		"duration_ms", time.Since(start).Milliseconds(),
		"ok", err == nil)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", &ExecutionError{Detail: fmt.Sprintf("timed out after %s", r.Timeout)}
	}
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", &ExecutionError{Detail: detail}
	}

	text, err := CollectTextOutputs(stdout.Bytes())
	if err != nil {
		return "", &ExecutionError{Detail: err.Error()}
	}
	return text, nil
}

// executedNotebook is the slice of the nbformat v4 document we care about:
// cell outputs with stream text or a text/plain representation.
type executedNotebook struct {
	Cells []struct {
		Outputs []struct {
			Text json.RawMessage            `json:"text"`
			Data map[string]json.RawMessage `json:"data"`
		} `json:"outputs"`
	} `json:"cells"`
}

// CollectTextOutputs parses an executed notebook document and concatenates
// every textual output: stream "text" fields and data["text/plain"] entries,
// in cell order.
func CollectTextOutputs(raw []byte) (string, error) {
	var nb executedNotebook
	if err := json.Unmarshal(raw, &nb); err != nil {
		return "", fmt.Errorf("parse executed notebook: %w", err)
	}

	var out strings.Builder
	for _, cell := range nb.Cells {
		for _, o := range cell.Outputs {
			if o.Text != nil {
				out.WriteString(decodeMultiline(o.Text))
			} else if plain, ok := o.Data["text/plain"]; ok {
				out.WriteString(decodeMultiline(plain))
			}
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// decodeMultiline handles nbformat's two encodings of text: a plain string or
// a list of line strings.
func decodeMultiline(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, "")
	}
	return ""
}
