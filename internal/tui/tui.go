// Package tui is a terminal viewer of the channel tree: the same rendering
// the bot replies with, refreshed on an interval.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
	"github.com/MKhiriev/ts3-users-bot/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	usersService    service.UsersService
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo

	logger *logger.Logger
}

func New(usersService service.UsersService, refreshInterval time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if usersService == nil {
		return nil, errors.New("users service is required")
	}
	return &TUI{
		usersService:    usersService,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
		logger:          logger,
	}, nil
}

// Run shows the viewer until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newViewerModel(ctx, t.usersService, t.refreshInterval, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(viewerModel); ok && result.lastErr != nil {
		t.logger.Err(result.lastErr).Msg("viewer closed with a failed refresh")
	}

	return nil
}
