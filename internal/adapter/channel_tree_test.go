package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelTreeBody = `[{"Cid":1,"Pid":0,"Channel_name":"Lobby","Subchannel_list":[],"Client_list":[]}]`

// newTestChannelTreeAdapter creates a channelTreeAdapter pointed at the test server.
func newTestChannelTreeAdapter(t *testing.T, url string) ChannelTreeAdapter {
	t.Helper()

	a, err := NewChannelTreeAdapter(url, time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewChannelTreeAdapter_InvalidURL(t *testing.T) {
	_, err := NewChannelTreeAdapter("   ", time.Second, logger.Nop())
	require.Error(t, err)
}

// ── FetchChannelTree ────────────────────────────────────────────────────────

func TestFetchChannelTree_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/channels", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(channelTreeBody))
	}))
	defer srv.Close()

	a := newTestChannelTreeAdapter(t, srv.URL+"/api/channels")
	body, err := a.FetchChannelTree(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, channelTreeBody, string(body))
}

func TestFetchChannelTree_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestChannelTreeAdapter(t, srv.URL).FetchChannelTree(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchChannelTree_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestChannelTreeAdapter(t, srv.URL).FetchChannelTree(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestFetchChannelTree_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestChannelTreeAdapter(t, url).FetchChannelTree(context.Background())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestFetchChannelTree_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(channelTreeBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestChannelTreeAdapter(t, srv.URL).FetchChannelTree(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
