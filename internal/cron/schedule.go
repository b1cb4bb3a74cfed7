package cron

import (
	"fmt"
	"strings"

	"github.com/t77yq/cronexpand/internal/table"
)

// Tabular is the access surface shared by raw and expanded schedules: both
// present themselves as labeled rows for table rendering.
type Tabular interface {
	Rows() []table.Row
}

// Schedule holds the five raw field notations and the trailing command of a
// schedule expression, verbatim as given.
type Schedule struct {
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string
	Command    string
}

// Parse splits a schedule expression on whitespace runs into the five field
// notations plus the command. The command is everything after the fifth
// token, space-joined, so it may itself contain spaces; a single-token
// command is valid. Fails with ErrMalformedExpression when the expression
// has fewer than six parts.
func Parse(expr string) (*Schedule, error) {
	parts := strings.Fields(expr)
	if len(parts) < 6 {
		return nil, fmt.Errorf("%w: got %d", ErrMalformedExpression, len(parts))
	}

	return &Schedule{
		Minute:     parts[0],
		Hour:       parts[1],
		DayOfMonth: parts[2],
		Month:      parts[3],
		DayOfWeek:  parts[4],
		Command:    strings.Join(parts[5:], " "),
	}, nil
}

// notations returns the raw field notations in expression order, matching
// the fields slice index for index.
func (s *Schedule) notations() [5]string {
	return [5]string{s.Minute, s.Hour, s.DayOfMonth, s.Month, s.DayOfWeek}
}

// Expand applies the field expander to each raw notation against its
// field's domain, left to right. The first expansion error aborts the whole
// operation and is returned unchanged, so the leftmost invalid field
// determines the error the caller sees.
func (s *Schedule) Expand() (*Expanded, error) {
	notations := s.notations()
	expanded := &Expanded{Command: s.Command}
	sequences := [...]*[]int{
		&expanded.Minute,
		&expanded.Hour,
		&expanded.DayOfMonth,
		&expanded.Month,
		&expanded.DayOfWeek,
	}

	for i, field := range fields {
		values, err := Expand(notations[i], field.Domain())
		if err != nil {
			return nil, err
		}
		*sequences[i] = values
	}

	return expanded, nil
}

// Rows presents the unexpanded notations as table rows.
func (s *Schedule) Rows() []table.Row {
	notations := s.notations()
	rows := make([]table.Row, 0, len(fields)+1)
	for i, field := range fields {
		rows = append(rows, table.Row{Label: field.String(), Value: table.Text(notations[i])})
	}
	return append(rows, table.Row{Label: "command", Value: table.Text(s.Command)})
}

// Expanded holds the five expanded integer sequences plus the command.
// Every integer in a sequence is a member of its field's domain.
type Expanded struct {
	Minute     []int
	Hour       []int
	DayOfMonth []int
	Month      []int
	DayOfWeek  []int
	Command    string
}

// Rows presents the expanded sequences as table rows.
func (e *Expanded) Rows() []table.Row {
	sequences := [...][]int{e.Minute, e.Hour, e.DayOfMonth, e.Month, e.DayOfWeek}
	rows := make([]table.Row, 0, len(fields)+1)
	for i, field := range fields {
		rows = append(rows, table.Row{Label: field.String(), Value: table.Ints(sequences[i])})
	}
	return append(rows, table.Row{Label: "command", Value: table.Text(e.Command)})
}
