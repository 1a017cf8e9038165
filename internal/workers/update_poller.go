// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
	"github.com/MKhiriev/ts3-users-bot/internal/utils"
	"github.com/MKhiriev/ts3-users-bot/models"
)

const (
	defaultMinBackoff = time.Second
	defaultMaxBackoff = 30 * time.Second
)

// UpdatePoller long-polls the Bot API and hands every update to the command
// service, one at a time and in update id order.
type UpdatePoller struct {
	botAdapter     adapter.BotAdapter
	commandService service.CommandService

	pollTimeout time.Duration
	minBackoff  time.Duration
	maxBackoff  time.Duration

	// offset is the id of the next update to request.
	offset int64

	logger *logger.Logger
}

func NewUpdatePoller(botAdapter adapter.BotAdapter, commandService service.CommandService, cfg config.Workers, logger *logger.Logger) *UpdatePoller {
	return &UpdatePoller{
		botAdapter:     botAdapter,
		commandService: commandService,
		pollTimeout:    cfg.PollTimeout,
		minBackoff:     defaultMinBackoff,
		maxBackoff:     defaultMaxBackoff,
		logger:         logger,
	}
}

// Run polls until ctx is cancelled. Failed polls are retried with
// exponential backoff; a failed update is logged and skipped.
func (p *UpdatePoller) Run(ctx context.Context) {
	p.logger.Info().Dur("poll_timeout", p.pollTimeout).Msg("update poller started")
	defer p.logger.Info().Int64("offset", p.offset).Msg("update poller stopped")

	backoff := p.minBackoff
	for ctx.Err() == nil {
		updates, err := p.botAdapter.GetUpdates(ctx, p.offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			p.logger.Err(err).Dur("backoff", backoff).Msg("error polling updates")
			if !sleep(ctx, backoff) {
				return
			}
			backoff = min(backoff*2, p.maxBackoff)
			continue
		}

		backoff = p.minBackoff
		for _, update := range updates {
			// the offset moves past an update before it is handled so a
			// failing update is not redelivered forever
			p.offset = update.UpdateID + 1
			p.handle(ctx, update)
		}
	}
}

// Offset returns the id of the next update the poller will request.
func (p *UpdatePoller) Offset() int64 {
	return p.offset
}

func (p *UpdatePoller) handle(ctx context.Context, update models.Update) {
	log := p.logger.WithTraceID(utils.NewTraceID())
	ctx = log.WithContext(ctx)

	if err := p.commandService.HandleUpdate(ctx, update); err != nil {
		log.Err(err).Int64("update_id", update.UpdateID).Msg("error handling update")
	}
}

// sleep waits for d and reports whether ctx is still alive.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
