// Package table renders labeled values as a plain aligned text table.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// labelWidth is the fixed width labels are padded to before the value.
const labelWidth = 14

// Value is a renderable table cell: either a literal string or an integer
// sequence.
type Value interface {
	cell() string
}

// Text is a literal string cell.
type Text string

func (t Text) cell() string { return string(t) }

// Ints is an integer-sequence cell, rendered space-joined in sequence order.
type Ints []int

func (v Ints) cell() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// Row pairs a label with its value.
type Row struct {
	Label string
	Value Value
}

// Render formats each row as the label padded to labelWidth characters, a
// single space, and the rendered value. The final line carries no trailing
// newline.
func Render(rows []Row) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s %s", labelWidth, row.Label, row.Value.cell())
	}
	return b.String()
}
