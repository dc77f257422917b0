package http_test

import (
	"encoding/json"
	"io"
	gohttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shinyflakes/pkg/http"
)

func TestGetWithQueryAndHeaders(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		assert.Equal(t, "premium", r.URL.Query().Get("category"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("X-Custom", "yes")
		_, _ = w.Write([]byte(`{"data":"ok"}`))
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL).
		Query("category", "premium").
		Bearer("tok-123").
		Send()
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header("X-Custom"))

	var body struct {
		Data string `json:"data"`
	}
	require.NoError(t, resp.JSON(&body))
	assert.Equal(t, "ok", body.Data)
	require.NoError(t, resp.Throw())
}

func TestPostMarshalsJSONBody(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "jesse@shinyflakes.test", body["email"])

		w.WriteHeader(gohttp.StatusCreated)
	}))
	defer srv.Close()

	resp, err := http.Post(srv.URL).
		Body(map[string]string{"email": "jesse@shinyflakes.test"}).
		Send()
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestRawStringBody(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.Equal(t, "plain payload", string(raw))
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
	}))
	defer srv.Close()

	_, err := http.Put(srv.URL).Body("plain payload").Send()
	require.NoError(t, err)
}

func TestThrowOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		w.WriteHeader(gohttp.StatusTeapot)
	}))
	defer srv.Close()

	resp, err := http.Delete(srv.URL).Send()
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Error(t, resp.Throw())
}

func TestRetryRecoversAfterFailure(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			// Kill the connection so the client sees a transport error.
			hj, ok := w.(gohttp.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	resp, err := http.Get(srv.URL).
		Retry(3, time.Millisecond).
		Send()
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text())
	assert.EqualValues(t, 2, atomic.LoadInt64(&calls))
}

func TestRetriesExhausted(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		hj := w.(gohttp.Hijacker)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	defer srv.Close()

	_, err := http.Get(srv.URL).Retry(2, time.Millisecond).Send()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 attempts failed")
}

func TestQueryAppendsToExistingQueryString(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "12", r.URL.Query().Get("limit"))
	}))
	defer srv.Close()

	_, err := http.Get(srv.URL + "?page=1").Query("limit", "12").Send()
	require.NoError(t, err)
}
