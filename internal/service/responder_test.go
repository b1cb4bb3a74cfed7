package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/t77yq/cronexpand/internal/api"
	"github.com/t77yq/cronexpand/internal/metrics"
	"github.com/t77yq/cronexpand/internal/testutil"
)

func TestResponder(t *testing.T) {
	nc, cleanup := testutil.SetupNATS(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	responder := NewResponder(nc, "cron.expand", zap.NewNop(), metrics.Noop{}, nil)
	require.NoError(t, responder.Start(ctx))

	request := func(t *testing.T, payload string) api.ExpandResponse {
		t.Helper()

		msg, err := nc.Request("cron.expand", []byte(payload), 5*time.Second)
		require.NoError(t, err)

		var resp api.ExpandResponse
		require.NoError(t, json.Unmarshal(msg.Data, &resp))
		return resp
	}

	t.Run("valid expression", func(t *testing.T) {
		resp := request(t, `{"expression": "0 0 1 1 1 /usr/bin/command"}`)

		assert.True(t, resp.OK())
		assert.Equal(t, []int{0}, resp.Minute)
		assert.Equal(t, []int{1}, resp.Month)
		assert.Equal(t, "/usr/bin/command", resp.Command)
		assert.Contains(t, resp.Table, "command        /usr/bin/command")
	})

	t.Run("invalid expression", func(t *testing.T) {
		resp := request(t, `{"expression": "9-3 * * * * true"}`)

		assert.False(t, resp.OK())
		assert.Contains(t, resp.Error, "invalid range")
	})

	t.Run("invalid payload", func(t *testing.T) {
		resp := request(t, `{not json`)

		assert.False(t, resp.OK())
		assert.Equal(t, "invalid request payload", resp.Error)
	})

	t.Run("unsubscribes on context cancel", func(t *testing.T) {
		cancel()

		require.Eventually(t, func() bool {
			_, err := nc.Request("cron.expand", []byte(`{"expression": "* * * * * true"}`), 100*time.Millisecond)
			return err != nil
		}, 5*time.Second, 100*time.Millisecond)
	})
}
