package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/app"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
	"github.com/MKhiriev/ts3-users-bot/internal/tree"
)

var errorStatusMap = map[error]int{
	ErrInvalidUpdate:        http.StatusBadRequest,
	ErrInvalidWebhookSecret: http.StatusUnauthorized,

	service.ErrFetchChannelTree: http.StatusBadGateway,
	service.ErrParseChannelTree: http.StatusBadGateway,
	service.ErrSendReply:        http.StatusBadGateway,

	tree.ErrMissingField: http.StatusBadGateway,
	tree.ErrInvalidField: http.StatusBadGateway,

	adapter.ErrUpstreamUnavailable: http.StatusBadGateway,
	adapter.ErrBotAPI:              http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a fixed message.
// Upstream details stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, messageFromStatus(status), status)
}

func messageFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return app.MsgInvalidUpdate
	case http.StatusUnauthorized:
		return app.MsgInvalidWebhookSecret
	case http.StatusBadGateway:
		return app.MsgUpstreamUnavailable
	default:
		return app.MsgInternalServerError
	}
}
