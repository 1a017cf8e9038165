// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// bot's command handling, HTTP handlers and terminal viewer.
//
// All Msg* constants are human-readable message strings that are written into
// chat replies, HTTP response bodies or log entries to describe the outcome
// of an operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgNoUsersOnline replaces an empty channel tree rendering. The Bot API
	// rejects empty messages.
	MsgNoUsersOnline = "No users online"

	// MsgUpstreamUnavailable is returned when the channel tree cannot be
	// fetched or parsed, or a reply cannot be delivered.
	MsgUpstreamUnavailable = "channel tree is unavailable"

	// MsgInvalidUpdate is returned when a webhook body is not a Bot API
	// update.
	MsgInvalidUpdate = "invalid update"

	// MsgInvalidWebhookSecret is returned when the webhook secret token
	// header is missing or wrong.
	MsgInvalidWebhookSecret = "invalid webhook secret token"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
