// Package server wires and runs the bot's long-lived components.
//
// It owns the lifecycle of the HTTP server and the background workers,
// including startup, signal handling, and graceful shutdown.
package server
