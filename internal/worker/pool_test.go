package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedJob struct {
	calls   int
	payload json.RawMessage
}

func (c *capturedJob) Process(_ context.Context, raw json.RawMessage) {
	c.calls++
	c.payload = raw
}

func encodeJob(t *testing.T, jobType string, payload interface{}) string {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	require.NoError(t, err)
	return string(encoded)
}

func TestProcessJob_EnrutaAlHandlerRegistrado(t *testing.T) {
	pool := NewPool(nil)
	exporte := &capturedJob{}
	email := &capturedJob{}
	pool.Register("exporte", exporte)
	pool.Register("email", email)

	raw := encodeJob(t, "exporte", map[string]string{"exporte_id": "abc", "formato": "pdf"})
	pool.processJob(context.Background(), QueueExportes, raw)

	assert.Equal(t, 1, exporte.calls)
	assert.Zero(t, email.calls)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(exporte.payload, &payload))
	assert.Equal(t, "pdf", payload["formato"])
}

func TestProcessJob_EnvelopeCorruptoSeDescarta(t *testing.T) {
	pool := NewPool(nil)
	h := &capturedJob{}
	pool.Register("exporte", h)

	pool.processJob(context.Background(), QueueExportes, "{no es json")

	assert.Zero(t, h.calls)
}
