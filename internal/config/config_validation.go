// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] is usable by the bot
// server. Returns nil if the configuration is valid, or an error wrapping
// one of the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := validateURL(cfg.Adapter.ChannelTreeURL); err != nil {
		return fmt.Errorf("%w: channel tree url: %w", ErrInvalidAdapterConfigs, err)
	}

	if strings.TrimSpace(cfg.Bot.Token) == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidBotConfigs)
	}

	switch cfg.Bot.Mode {
	case BotModePolling:
		if cfg.Workers.PollTimeout <= 0 {
			return fmt.Errorf("%w: poll timeout must be positive", ErrInvalidWorkerConfigs)
		}
	case BotModeWebhook:
		if cfg.Server.HTTPAddress == "" {
			return fmt.Errorf("%w: webhook mode needs an http address", ErrInvalidServerConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidBotConfigs, cfg.Bot.Mode)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateURL(cfg.Adapter.ChannelTreeURL); err != nil {
		return fmt.Errorf("%w: channel tree url: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("empty url")
	}

	_, err := url.Parse(raw)
	return err
}
