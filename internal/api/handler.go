// Package api exposes the expansion core over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/t77yq/cronexpand/internal/metrics"
	"github.com/t77yq/cronexpand/internal/storage"
)

// Handler serves the expansion HTTP API.
type Handler struct {
	logger  *zap.Logger
	sink    metrics.Sink
	history storage.HistoryStorage // nil disables the audit log
}

// NewHandler creates a handler. history may be nil.
func NewHandler(logger *zap.Logger, sink metrics.Sink, history storage.HistoryStorage) *Handler {
	return &Handler{
		logger:  logger.Named("api"),
		sink:    sink,
		history: history,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/v1/expand" && r.Method == http.MethodPost:
		h.expand(w, r)

	case r.URL.Path == "/healthz" && r.Method == http.MethodGet:
		h.health(w, r)

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	}
}

func (h *Handler) expand(w http.ResponseWriter, r *http.Request) {
	var req ExpandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	start := time.Now()
	resp := Expand(req)
	duration := time.Since(start)

	h.record(r, req, resp, duration)

	status := http.StatusOK
	if !resp.OK() {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, resp)
}

// record updates metrics and the audit log for a served request.
func (h *Handler) record(r *http.Request, req ExpandRequest, resp ExpandResponse, duration time.Duration) {
	outcome := metrics.OutcomeOK
	if !resp.OK() {
		outcome = metrics.OutcomeError
	}
	h.sink.ExpansionServed(outcome, duration)

	h.logger.Info("Served expansion",
		zap.String("id", resp.ID),
		zap.String("outcome", outcome),
		zap.Duration("duration", duration))

	if h.history == nil {
		return
	}

	record := &storage.ExpansionRecord{
		ID:         resp.ID,
		Expression: req.Expression,
		Outcome:    outcome,
		Error:      resp.Error,
		Duration:   duration,
		CreatedAt:  time.Now(),
	}
	if err := h.history.Store(r.Context(), record); err != nil {
		h.logger.Error("Failed to store expansion record",
			zap.String("id", resp.ID),
			zap.Error(err))
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
