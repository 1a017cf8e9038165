package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/tree"
	"github.com/MKhiriev/ts3-users-bot/models"
)

// UsersLoggingService logs every UsersService call with its duration and
// outcome. The request-scoped logger from ctx is preferred so entries carry
// the trace id.
type UsersLoggingService struct {
	inner  UsersService
	logger *logger.Logger
}

func NewUsersLoggingService(logger *logger.Logger) UsersServiceWrapper {
	return &UsersLoggingService{logger: logger}
}

func (u *UsersLoggingService) ListUsers(ctx context.Context) (string, error) {
	start := time.Now()
	text, err := u.inner.ListUsers(ctx)

	log := logger.FromContextOr(ctx, u.logger)
	if err != nil {
		log.Err(err).Dur("took", time.Since(start)).Msg("list users failed")
		return "", err
	}

	log.Info().
		Dur("took", time.Since(start)).
		Int("bytes", len(text)).
		Int("lines", strings.Count(text, "\n")).
		Msg("users listed")

	return text, nil
}

func (u *UsersLoggingService) ListChannels(ctx context.Context) ([]models.Channel, error) {
	start := time.Now()
	channels, err := u.inner.ListChannels(ctx)

	log := logger.FromContextOr(ctx, u.logger)
	if err != nil {
		log.Err(err).Dur("took", time.Since(start)).Msg("list channels failed")
		return nil, err
	}

	log.Info().
		Dur("took", time.Since(start)).
		Int("channels", len(channels)).
		Int("clients", tree.CountClients(channels)).
		Msg("channels listed")

	return channels, nil
}

func (u *UsersLoggingService) Wrap(inner UsersService) UsersService {
	u.inner = inner
	return u
}
