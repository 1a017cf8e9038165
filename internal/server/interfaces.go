package server

import "context"

// Server defines the lifecycle contract of the bot process.
//
// RunServer blocks until a termination signal arrives and everything has
// stopped; Run does the same for an explicit context.
type Server interface {
	// RunServer starts serving and blocks until SIGTERM, SIGINT or SIGQUIT.
	RunServer()

	// Run starts serving and blocks until ctx is cancelled and all
	// components have stopped.
	Run(ctx context.Context) error
}
