// Package http implements the HTTP transport layer of the bot server.
//
// It exposes route wiring, request handlers, and middleware. The Bot API
// webhook lands here, next to read-only routes serving the same channel tree
// rendering as text and as JSON. Request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
