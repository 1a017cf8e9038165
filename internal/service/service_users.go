package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/tree"
	"github.com/MKhiriev/ts3-users-bot/models"
)

type usersService struct {
	channelTreeAdapter adapter.ChannelTreeAdapter

	logger *logger.Logger
}

// NewUsersService constructs a UsersService reading the tree through
// channelTreeAdapter. Every call fetches and parses a fresh tree.
func NewUsersService(channelTreeAdapter adapter.ChannelTreeAdapter, logger *logger.Logger) UsersService {
	return &usersService{
		channelTreeAdapter: channelTreeAdapter,
		logger:             logger,
	}
}

func (u *usersService) ListUsers(ctx context.Context) (string, error) {
	channels, err := u.fetchChannels(ctx)
	if err != nil {
		return "", err
	}

	return tree.Render(channels), nil
}

func (u *usersService) ListChannels(ctx context.Context) ([]models.Channel, error) {
	channels, err := u.fetchChannels(ctx)
	if err != nil {
		return nil, err
	}

	return tree.ChannelsWithUsers(channels), nil
}

func (u *usersService) fetchChannels(ctx context.Context) ([]models.Channel, error) {
	raw, err := u.channelTreeAdapter.FetchChannelTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchChannelTree, err)
	}

	channels, err := tree.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseChannelTree, err)
	}

	return channels, nil
}
