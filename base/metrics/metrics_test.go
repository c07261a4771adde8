package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	assert.Nil(t, parseTag(nil))
	assert.Equal(t, []string{"chain:1", "method:eth_call"}, parseTag([]string{"chain", "1", "method", "eth_call"}))
	assert.Panics(t, func() { parseTag([]string{"odd"}) })
}

func TestBumpWithoutAgent(t *testing.T) {
	// datadog_host is unset in tests so every client is a LogClient
	m := New("test")
	assert.NotPanics(t, func() {
		m.BumpSum("fetch.err", 1, "reason", "revert")
		m.BumpAvg("tokens", 3)
		m.BumpHistogram("latency", 12.5)
		m.BumpTime("fetch.time").End()
	})
	_, ok := nextClient().(*LogClient)
	assert.True(t, ok)
}
