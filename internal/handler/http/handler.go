package http

import (
	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
)

type Handler struct {
	services *service.Services

	webhookEnabled bool
	webhookSecret  string

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. The webhook route is only served when
// botCfg.Mode is webhook.
func NewHandler(services *service.Services, botCfg config.Bot, logger *logger.Logger) *Handler {
	logger.Info().Bool("webhook", botCfg.Mode == config.BotModeWebhook).Msg("http handler created")
	return &Handler{
		services:       services,
		webhookEnabled: botCfg.Mode == config.BotModeWebhook,
		webhookSecret:  botCfg.WebhookSecret,
		logger:         logger,
	}
}
