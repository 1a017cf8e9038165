// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Bot delivery modes.
const (
	// BotModeWebhook makes the Bot API push updates to the webhook route.
	BotModeWebhook = "webhook"
	// BotModePolling makes the bot pull updates with getUpdates long polling.
	BotModePolling = "polling"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultBotAPIURL        = "https://api.telegram.org"
	DefaultBotMode          = BotModePolling
	DefaultRequestTimeout   = 10 * time.Second
	DefaultPollTimeout      = 30 * time.Second
	DefaultRefreshInterval  = 30 * time.Second
	DefaultAppVersion       = "dev"
	defaultServerReadHeader = 5 * time.Second
)

// StructuredConfig is the top-level configuration container of the bot.
// It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`
	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`
	// Adapter holds the upstream channel tree API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Bot holds the chat-bot transport settings.
	Bot Bot `envPrefix:"BOT_"`
	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via /api/version/ and the viewer's info window.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format. Empty disables
	// the HTTP server, which is only allowed in polling mode.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout bounds reading and writing a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the upstream voice-server API.
type Adapter struct {
	// ChannelTreeURL is the endpoint answering GET with the channel tree JSON.
	// Env: ADAPTER_CHANNEL_TREE_URL
	ChannelTreeURL string `env:"CHANNEL_TREE_URL"`
	// RequestTimeout bounds a single upstream request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bot holds the Telegram Bot API settings.
type Bot struct {
	// Token is the bot token issued by BotFather. Must be kept confidential.
	// Env: BOT_TOKEN
	Token string `env:"TOKEN"`
	// APIURL is the Bot API base URL.
	// Env: BOT_API_URL
	APIURL string `env:"API_URL"`
	// Mode is either "webhook" or "polling".
	// Env: BOT_MODE
	Mode string `env:"MODE"`
	// WebhookSecret is compared with the X-Telegram-Bot-Api-Secret-Token
	// header of webhook calls. Empty disables the check.
	// Env: BOT_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

// Workers holds background worker settings.
type Workers struct {
	// PollTimeout is the getUpdates long-polling timeout.
	// Env: WORKERS_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`
	// RefreshInterval is how often the terminal viewer re-renders the tree.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// ReadHeaderTimeout returns the header read timeout used by the HTTP server.
func (s Server) ReadHeaderTimeout() time.Duration {
	if s.RequestTimeout > 0 && s.RequestTimeout < defaultServerReadHeader {
		return s.RequestTimeout
	}
	return defaultServerReadHeader
}

// GetStructuredConfig loads, merges, and validates the bot server
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
