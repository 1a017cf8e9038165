package service

import (
	"fmt"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
)

type Services struct {
	UsersService   UsersService
	CommandService CommandService
	AppInfoService AppInfoService
}

// NewServices wires the services of the bot server. UsersService is wrapped
// with request logging and shared by the command handler and the read-only
// HTTP routes.
func NewServices(channelTreeAdapter adapter.ChannelTreeAdapter, botAdapter adapter.BotAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	usersService := NewUsersLoggingService(logger).Wrap(NewUsersService(channelTreeAdapter, logger))

	return &Services{
		UsersService:   usersService,
		CommandService: NewCommandService(usersService, botAdapter, logger),
		AppInfoService: appInfoService,
	}, nil
}
