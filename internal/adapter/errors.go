package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrBotAPI reports a Bot API call answered with ok=false.
	ErrBotAPI = errors.New("bot api error")
)
