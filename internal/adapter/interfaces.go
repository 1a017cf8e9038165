// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// two upstream systems of the bot: the voice-server channel tree API and the
// Telegram Bot API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUpstreamUnavailable] when the upstream cannot be reached).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/ts3-users-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ChannelTreeAdapter fetches the raw channel tree document.
type ChannelTreeAdapter interface {
	// FetchChannelTree returns the undecoded JSON body of the channel tree
	// endpoint. Decoding is left to the caller so that parse errors can carry
	// JSON paths.
	FetchChannelTree(ctx context.Context) ([]byte, error)
}

// BotAdapter is the subset of the Bot API the bot uses.
type BotAdapter interface {
	// SendMessage posts msg to its chat. Returns [ErrBotAPI] (wrapped) when
	// the Bot API refuses the message.
	SendMessage(ctx context.Context, msg models.OutgoingMessage) error

	// GetUpdates long-polls for updates with an id of at least offset,
	// waiting up to timeout for one to arrive. An empty slice means the poll
	// timed out without updates.
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]models.Update, error)
}
