package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123456:secret-token"

// newTestBotAdapter creates a botAdapter pointed at the test server.
func newTestBotAdapter(t *testing.T, url string) BotAdapter {
	t.Helper()

	a, err := NewBotAdapter(config.Bot{APIURL: url, Token: testToken}, time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewBotAdapter_Validation(t *testing.T) {
	_, err := NewBotAdapter(config.Bot{APIURL: "https://api.telegram.org", Token: "  "}, time.Second, logger.Nop())
	assert.Error(t, err)

	_, err = NewBotAdapter(config.Bot{APIURL: "", Token: testToken}, time.Second, logger.Nop())
	assert.Error(t, err)
}

// ── SendMessage ─────────────────────────────────────────────────────────────

func TestSendMessage_Success(t *testing.T) {
	msg := models.OutgoingMessage{ChatID: 42, Text: "\U0001F4AC Lobby\n", ReplyToMessageID: 7}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot"+testToken+"/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.OutgoingMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, msg, got)

		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":8}}`))
	}))
	defer srv.Close()

	err := newTestBotAdapter(t, srv.URL).SendMessage(context.Background(), msg)
	require.NoError(t, err)
}

func TestSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: message text is empty"}`))
	}))
	defer srv.Close()

	err := newTestBotAdapter(t, srv.URL).SendMessage(context.Background(), models.OutgoingMessage{ChatID: 1})

	require.ErrorIs(t, err, ErrBotAPI)
	assert.Contains(t, err.Error(), "message text is empty")
}

func TestSendMessage_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	err := newTestBotAdapter(t, srv.URL).SendMessage(context.Background(), models.OutgoingMessage{ChatID: 1, Text: "x"})

	assert.ErrorIs(t, err, ErrBotAPI)
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestSendMessage_TransportErrorHidesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestBotAdapter(t, url).SendMessage(context.Background(), models.OutgoingMessage{ChatID: 1, Text: "x"})

	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.NotContains(t, err.Error(), testToken)
}

// ── GetUpdates ──────────────────────────────────────────────────────────────

func TestGetUpdates_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot"+testToken+"/getUpdates", r.URL.Path)

		var req models.GetUpdatesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(10), req.Offset)
		assert.Equal(t, 2, req.Timeout)
		assert.Equal(t, []string{"message"}, req.AllowedUpdates)

		_, _ = w.Write([]byte(`{"ok":true,"result":[
			{"update_id":10,"message":{"message_id":1,"chat":{"id":5,"type":"group"},"text":"/users"}},
			{"update_id":11}
		]}`))
	}))
	defer srv.Close()

	updates, err := newTestBotAdapter(t, srv.URL).GetUpdates(context.Background(), 10, 2*time.Second)

	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, int64(10), updates[0].UpdateID)
	require.NotNil(t, updates[0].Message)
	assert.Equal(t, "/users", updates[0].Message.Text)
	assert.Equal(t, int64(5), updates[0].Message.Chat.ID)
	assert.Nil(t, updates[1].Message)
}

func TestGetUpdates_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer srv.Close()

	_, err := newTestBotAdapter(t, srv.URL).GetUpdates(context.Background(), 0, time.Second)

	require.ErrorIs(t, err, ErrBotAPI)
	assert.Contains(t, err.Error(), "401")
}
