// Package service answers expansion requests over NATS request/reply.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/t77yq/cronexpand/internal/api"
	"github.com/t77yq/cronexpand/internal/metrics"
	"github.com/t77yq/cronexpand/internal/storage"
)

// Responder replies to expansion requests published on a NATS subject. The
// request and reply payloads use the same JSON shapes as the HTTP API.
type Responder struct {
	nc      *nats.Conn
	subject string
	logger  *zap.Logger
	sink    metrics.Sink
	history storage.HistoryStorage // nil disables the audit log
}

// NewResponder creates a responder for the given subject. history may be nil.
func NewResponder(nc *nats.Conn, subject string, logger *zap.Logger, sink metrics.Sink, history storage.HistoryStorage) *Responder {
	return &Responder{
		nc:      nc,
		subject: subject,
		logger:  logger.Named("responder"),
		sink:    sink,
		history: history,
	}
}

// Start subscribes to the subject and unsubscribes when ctx is done.
func (r *Responder) Start(ctx context.Context) error {
	sub, err := r.nc.Subscribe(r.subject, r.handle)
	if err != nil {
		return err
	}

	r.logger.Info("Answering expansion requests", zap.String("subject", r.subject))

	go func() {
		<-ctx.Done()
		sub.Unsubscribe()
	}()

	return nil
}

func (r *Responder) handle(msg *nats.Msg) {
	var req api.ExpandRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		r.logger.Error("Failed to unmarshal expansion request", zap.Error(err))
		r.reply(msg, api.ExpandResponse{Error: "invalid request payload"})
		return
	}

	start := time.Now()
	resp := api.Expand(req)
	duration := time.Since(start)

	outcome := metrics.OutcomeOK
	if !resp.OK() {
		outcome = metrics.OutcomeError
	}
	r.sink.ExpansionServed(outcome, duration)

	if r.history != nil {
		record := &storage.ExpansionRecord{
			ID:         resp.ID,
			Expression: req.Expression,
			Outcome:    outcome,
			Error:      resp.Error,
			Duration:   duration,
			CreatedAt:  time.Now(),
		}
		if err := r.history.Store(context.Background(), record); err != nil {
			r.logger.Error("Failed to store expansion record",
				zap.String("id", resp.ID),
				zap.Error(err))
		}
	}

	r.reply(msg, resp)

	r.logger.Info("Served expansion",
		zap.String("id", resp.ID),
		zap.String("outcome", outcome),
		zap.Duration("duration", duration))
}

func (r *Responder) reply(msg *nats.Msg, resp api.ExpandResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		r.logger.Error("Failed to marshal expansion response", zap.Error(err))
		return
	}

	if err := msg.Respond(data); err != nil {
		r.logger.Error("Failed to respond to expansion request", zap.Error(err))
	}
}
