package handler

import (
	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/handler/http"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. The HTTP
// handler is created when an HTTP address is configured; without one the
// bot can still run in polling mode, which the caller decides.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Bot, logger)
	}

	if handlers.HTTP == nil {
		return nil, ErrNoHandlersAreCreated
	}

	return handlers, nil
}
