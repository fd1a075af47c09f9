package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sqlgen/cache"
	"sqlgen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, url string, timeout time.Duration, c *cache.Cache) *AIService {
	t.Helper()
	svc, err := New(url, "qwen2.5-coder:3b", timeout, c, nil)
	require.NoError(t, err)
	return svc
}

func TestNewRequiresEndpointAndModel(t *testing.T) {
	_, err := New("", "m", 0, nil, nil)
	assert.Error(t, err)

	_, err = New("http://x", " ", 0, nil, nil)
	assert.Error(t, err)
}

func TestGenerateSendsRequestBody(t *testing.T) {
	var got models.GenerationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		var raw map[string]any
		assert.NoError(t, json.Unmarshal(body, &raw))
		assert.Contains(t, raw, "stream")

		w.Write([]byte(`{"model":"qwen2.5-coder:3b","response":"SELECT 1;","done":true}`))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, time.Second, nil)
	text, err := svc.Generate(context.Background(), "convert\n\nSELECT 1 FROM rdb$database;")

	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;", text)
	assert.Equal(t, "convert\n\nSELECT 1 FROM rdb$database;", got.Prompt)
	assert.False(t, got.Stream)
	assert.Equal(t, "qwen2.5-coder:3b", got.Model)
}

func TestGenerateMissingResponseFieldIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"done":true}`))
	}))
	defer srv.Close()

	text, err := newTestService(t, srv.URL, time.Second, nil).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestGenerateNon200ReturnsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"model 'qwen2.5-coder:3b' not found"}`))
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL, time.Second, nil).Generate(context.Background(), "p")

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
	assert.JSONEq(t, `{"error":"model 'qwen2.5-coder:3b' not found"}`, string(remoteErr.Body))
}

func TestGenerateInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL, time.Second, nil).Generate(context.Background(), "p")
	require.Error(t, err)
	var remoteErr *RemoteError
	assert.False(t, errors.As(err, &remoteErr))
}

func TestGenerateTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := newTestService(t, srv.URL, 50*time.Millisecond, nil).Generate(context.Background(), "p")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestGenerateHonoursCallerCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	_, err := newTestService(t, srv.URL, time.Minute, nil).Generate(ctx, "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerateUsesCache(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"response":"cached"}`))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, time.Second, cache.New(time.Minute))
	for i := 0; i < 3; i++ {
		text, err := svc.Generate(context.Background(), "same prompt")
		require.NoError(t, err)
		assert.Equal(t, "cached", text)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err := svc.Generate(context.Background(), "other prompt")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRelayReturnsRawStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"busy"}`))
	}))
	defer srv.Close()

	status, body, err := newTestService(t, srv.URL, time.Second, nil).Relay(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, `{"error":"busy"}`, string(body))
}
