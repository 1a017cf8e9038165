package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds upstream settings used by the terminal viewer.
type ClientAdapter struct {
	// ChannelTreeURL is the channel tree API endpoint.
	ChannelTreeURL string
	// RequestTimeout is the timeout of a single fetch.
	RequestTimeout time.Duration
}

// ClientWorkers contains viewer background settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the viewer re-renders the tree.
	RefreshInterval time.Duration
}

// ClientConfig is the terminal viewer configuration assembled from
// [StructuredConfig]. The viewer talks to the channel tree API directly and
// needs no bot settings.
type ClientConfig struct {
	// Version is shown in the viewer's info window.
	Version string
	// Adapter contains upstream address and timeout.
	Adapter ClientAdapter
	// Workers contains refresh settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a viewer-specific config view from
// the merged structured configuration.
//
// It loads the merged sources the same way [GetStructuredConfig] does but
// skips the server validation rules, maps only the fields relevant to the
// viewer, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the viewer fields out of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Version: cfg.App.Version,
		Adapter: ClientAdapter{
			ChannelTreeURL: cfg.Adapter.ChannelTreeURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
	}
}
