package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/codequest-ai/codequest/internal/sandbox"
	"github.com/codequest-ai/codequest/pkg/api"
)

// ExecHandler serves POST /api/execute: it runs a submitted snippet in a
// subprocess under the configured timeout.
type ExecHandler struct {
	logger *slog.Logger
	runner *sandbox.Runner
}

// NewExecHandler creates a new ExecHandler.
func NewExecHandler(logger *slog.Logger, runner *sandbox.Runner) *ExecHandler {
	return &ExecHandler{
		logger: logger,
		runner: runner,
	}
}

// Execute handles POST /api/execute
func (h *ExecHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Code == "" {
		sendError(h.logger, w, "No code provided", http.StatusBadRequest)
		return
	}

	result, err := h.runner.Run(ctx, req.Code)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to execute snippet", slog.Any("error", err))
		sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	if result.TimedOut {
		sendJSON(h.logger, w, api.ExecuteResponse{
			Success: false,
			Error:   "Code execution timed out",
		}, http.StatusRequestTimeout)
		return
	}

	resp := api.ExecuteResponse{
		Success: result.ExitCode == 0,
		Output:  result.Stdout,
		Error:   result.Stderr,
	}
	if !resp.Success && resp.Error == "" {
		resp.Error = "Execution failed"
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
