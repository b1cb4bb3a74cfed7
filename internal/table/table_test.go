package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("pads labels to fourteen characters", func(t *testing.T) {
		out := Render([]Row{{Label: "minute", Value: Text("0")}})
		assert.Equal(t, "minute         0", out)
		assert.Equal(t, 15, strings.Index(out, "0"))
	})

	t.Run("joins integer sequences with spaces", func(t *testing.T) {
		out := Render([]Row{{Label: "month", Value: Ints([]int{1, 3, 5, 7, 9, 11})}})
		assert.Equal(t, "month          1 3 5 7 9 11", out)
	})

	t.Run("empty sequence renders as empty value", func(t *testing.T) {
		out := Render([]Row{{Label: "day of month", Value: Ints(nil)}})
		assert.Equal(t, "day of month   ", out)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		out := Render([]Row{
			{Label: "command", Value: Text("/usr/bin/find")},
			{Label: "minute", Value: Ints([]int{0, 30})},
		})
		assert.Equal(t, "command        /usr/bin/find\nminute         0 30", out)
		assert.False(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("no rows renders empty", func(t *testing.T) {
		assert.Equal(t, "", Render(nil))
	})
}
