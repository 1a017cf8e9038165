package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/ts3-users-bot/internal/logger"
)

// Viewer is the interactive surface the client runs.
type Viewer interface {
	Run(ctx context.Context) error
}

type App struct {
	viewer Viewer
	logger *logger.Logger
}

func NewApp(viewer Viewer, logger *logger.Logger) (*App, error) {
	if viewer == nil {
		return nil, errors.New("viewer is required")
	}
	return &App{viewer: viewer, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("starting viewer")
	if err := a.viewer.Run(ctx); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	a.logger.Info().Msg("viewer stopped")
	return nil
}
