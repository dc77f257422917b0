package client_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shinyflakes/client"
)

// GETs retry once on a transport failure, so a dropped connection is
// invisible to the caller.
func TestGetRetriesTransientTransportFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		writeJSON(t, w, client.HealthResponse{
			Status:    "OK",
			Timestamp: "2026-01-01T00:00:00Z",
			Service:   "ShinyFlakes API",
		})
	}))
	defer srv.Close()

	api := client.NewAPI(srv.URL, client.NewMemoryStorage())

	health, err := api.Health()
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)
	assert.EqualValues(t, 2, calls.Load())
}
