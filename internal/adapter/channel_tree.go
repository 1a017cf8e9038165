package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/utils"
)

type channelTreeAdapter struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewChannelTreeAdapter constructs a resty implementation of
// [ChannelTreeAdapter] that GETs rawURL. The URL is normalised the same way
// as every other upstream address.
//
// Returns an error if rawURL is empty or cannot be parsed.
func NewChannelTreeAdapter(rawURL string, timeout time.Duration, log *logger.Logger) (ChannelTreeAdapter, error) {
	endpoint, err := utils.NormalizeBaseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid channel tree url: %w", err)
	}

	return &channelTreeAdapter{
		client: utils.NewHTTPClient("", timeout),
		url:    endpoint,
		logger: log,
	}, nil
}

// FetchChannelTree implements [ChannelTreeAdapter].
func (c *channelTreeAdapter) FetchChannelTree(ctx context.Context) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetch channel tree: %w", ctxErr)
		}
		return nil, fmt.Errorf("fetch channel tree: %w: %w", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch channel tree: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Dur("took", resp.Time()).
		Msg("channel tree fetched")

	return resp.Body(), nil
}
