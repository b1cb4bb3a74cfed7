package api

import (
	"github.com/google/uuid"

	"github.com/t77yq/cronexpand/internal/cron"
	"github.com/t77yq/cronexpand/internal/table"
)

// ExpandRequest is the body of POST /v1/expand. The NATS responder accepts
// the same shape.
type ExpandRequest struct {
	Expression string `json:"expression"`
}

// ExpandResponse carries one expansion result. On failure only ID and Error
// are set.
type ExpandResponse struct {
	ID         string `json:"id"`
	Minute     []int  `json:"minute,omitempty"`
	Hour       []int  `json:"hour,omitempty"`
	DayOfMonth []int  `json:"day_of_month,omitempty"`
	Month      []int  `json:"month,omitempty"`
	DayOfWeek  []int  `json:"day_of_week,omitempty"`
	Command    string `json:"command,omitempty"`
	Table      string `json:"table,omitempty"`
	Error      string `json:"error,omitempty"`
}

// OK reports whether the expansion succeeded.
func (r *ExpandResponse) OK() bool { return r.Error == "" }

// Expand runs one expansion and shapes the outcome as a wire response with a
// fresh request ID. Parse and expansion errors land in the Error field
// verbatim; they are user input problems, not transport failures.
func Expand(req ExpandRequest) ExpandResponse {
	resp := ExpandResponse{ID: uuid.New().String()}

	sched, err := cron.Parse(req.Expression)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	expanded, err := sched.Expand()
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	resp.Minute = expanded.Minute
	resp.Hour = expanded.Hour
	resp.DayOfMonth = expanded.DayOfMonth
	resp.Month = expanded.Month
	resp.DayOfWeek = expanded.DayOfWeek
	resp.Command = expanded.Command
	resp.Table = table.Render(expanded.Rows())

	return resp
}
