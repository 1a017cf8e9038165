package http

import "errors"

var (
	// ErrInvalidUpdate is returned when the webhook body is not a Bot API
	// update.
	ErrInvalidUpdate = errors.New("invalid update")

	// ErrInvalidWebhookSecret is returned when the secret token header does
	// not match the configured webhook secret.
	ErrInvalidWebhookSecret = errors.New("invalid webhook secret token")
)
