package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t77yq/cronexpand/internal/table"
)

func TestParse(t *testing.T) {
	t.Run("splits fields and command", func(t *testing.T) {
		sched, err := Parse("*/15 0 1,15 * 1-5 /usr/bin/find")
		require.NoError(t, err)

		assert.Equal(t, "*/15", sched.Minute)
		assert.Equal(t, "0", sched.Hour)
		assert.Equal(t, "1,15", sched.DayOfMonth)
		assert.Equal(t, "*", sched.Month)
		assert.Equal(t, "1-5", sched.DayOfWeek)
		assert.Equal(t, "/usr/bin/find", sched.Command)
	})

	t.Run("command keeps embedded arguments", func(t *testing.T) {
		sched, err := Parse("* * * * * /usr/bin/backup -a -b --c=d")
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/backup -a -b --c=d", sched.Command)
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		sched, err := Parse("  *   *  * * *   echo   hi ")
		require.NoError(t, err)
		assert.Equal(t, "*", sched.Minute)
		assert.Equal(t, "echo hi", sched.Command)
	})

	t.Run("single-token command is valid", func(t *testing.T) {
		sched, err := Parse("0 0 1 1 1 reboot")
		require.NoError(t, err)
		assert.Equal(t, "reboot", sched.Command)
	})

	t.Run("too few parts", func(t *testing.T) {
		for _, expr := range []string{"", "0 0 1 1", "0 0 1 1 1", "* * *"} {
			_, err := Parse(expr)
			assert.ErrorIs(t, err, ErrMalformedExpression, "expression %q", expr)
		}
	})
}

func TestScheduleExpand(t *testing.T) {
	t.Run("single values", func(t *testing.T) {
		sched, err := Parse("0 0 1 1 1 /usr/bin/command")
		require.NoError(t, err)

		expanded, err := sched.Expand()
		require.NoError(t, err)

		assert.Equal(t, []int{0}, expanded.Minute)
		assert.Equal(t, []int{0}, expanded.Hour)
		assert.Equal(t, []int{1}, expanded.DayOfMonth)
		assert.Equal(t, []int{1}, expanded.Month)
		assert.Equal(t, []int{1}, expanded.DayOfWeek)
		assert.Equal(t, "/usr/bin/command", expanded.Command)
	})

	t.Run("mixed notations", func(t *testing.T) {
		sched, err := Parse("*/5 0-12 1,15 */2 1-5 /usr/bin/complex")
		require.NoError(t, err)

		expanded, err := sched.Expand()
		require.NoError(t, err)

		assert.Equal(t, []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55}, expanded.Minute)
		assert.Equal(t, span(0, 12), expanded.Hour)
		assert.Equal(t, []int{1, 15}, expanded.DayOfMonth)
		assert.Equal(t, []int{1, 3, 5, 7, 9, 11}, expanded.Month)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, expanded.DayOfWeek)
		assert.Equal(t, "/usr/bin/complex", expanded.Command)
	})

	t.Run("fixed domains per field", func(t *testing.T) {
		sched, err := Parse("* * * * * true")
		require.NoError(t, err)

		expanded, err := sched.Expand()
		require.NoError(t, err)

		assert.Equal(t, span(0, 59), expanded.Minute)
		assert.Equal(t, span(0, 23), expanded.Hour)
		assert.Equal(t, span(1, 31), expanded.DayOfMonth)
		assert.Equal(t, span(1, 12), expanded.Month)
		assert.Equal(t, span(1, 7), expanded.DayOfWeek)
	})

	t.Run("first invalid field wins", func(t *testing.T) {
		// Minute is invalid as a range, day-of-week as an interval; the
		// leftmost error must surface.
		sched, err := Parse("9-3 * * * */0 true")
		require.NoError(t, err)

		_, err = sched.Expand()
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("day of week rejects zero", func(t *testing.T) {
		sched, err := Parse("* * * * 0 true")
		require.NoError(t, err)

		_, err = sched.Expand()
		assert.ErrorIs(t, err, ErrValueNotInDomain)
	})
}

func TestTabularRows(t *testing.T) {
	sched, err := Parse("0 0 1 1 1 /usr/bin/command")
	require.NoError(t, err)

	expanded, err := sched.Expand()
	require.NoError(t, err)

	labels := func(tab Tabular) []string {
		rows := tab.Rows()
		out := make([]string, len(rows))
		for i, row := range rows {
			out[i] = row.Label
		}
		return out
	}

	want := []string{"minute", "hour", "day of month", "month", "day of week", "command"}
	assert.Equal(t, want, labels(sched))
	assert.Equal(t, want, labels(expanded))

	assert.Equal(t, table.Text("0"), sched.Rows()[0].Value)
	assert.Equal(t, table.Ints([]int{0}), expanded.Rows()[0].Value)
}

func TestRenderedSchedule(t *testing.T) {
	sched, err := Parse("0 0 1 1 1 /usr/bin/command")
	require.NoError(t, err)

	expanded, err := sched.Expand()
	require.NoError(t, err)

	want := "minute         0\n" +
		"hour           0\n" +
		"day of month   1\n" +
		"month          1\n" +
		"day of week    1\n" +
		"command        /usr/bin/command"
	assert.Equal(t, want, table.Render(expanded.Rows()))
}
