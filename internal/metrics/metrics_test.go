// internal/metrics/metrics_test.go
package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New(0x12)

	m.Observe(1000, 50000, 115*time.Millisecond, nil)
	m.Observe(0, 0, 0, errors.New("not configured"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FramesSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SendErrors))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.RealtimeWatts))
	assert.Equal(t, 50000.0, testutil.ToFloat64(m.AccumulatedWh))
	assert.Greater(t, testutil.ToFloat64(m.LastSendTimestamp), 0.0)

	n, err := testutil.GatherAndCount(m.Gatherer(), "owlsender_send_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPush(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New(7)
	m.Observe(10, 20, 115*time.Millisecond, nil)

	require.NoError(t, m.Push(context.Background(), srv.URL, "owlsend"))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/owlsend", path)
}

func TestPush_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Error(t, New(1).Push(context.Background(), srv.URL, "owlsend"))
}
