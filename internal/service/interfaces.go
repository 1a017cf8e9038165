package service

import (
	"context"

	"github.com/MKhiriev/ts3-users-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UsersServiceWrapper

// UsersService runs the fetch, parse, prune and format pipeline over the
// current channel tree.
type UsersService interface {
	// ListUsers returns the indented text rendering of every channel that
	// holds users, directly or through a descendant. An empty string means
	// nobody is online.
	ListUsers(ctx context.Context) (string, error)

	// ListChannels returns the pruned forest the text rendering is made of.
	ListChannels(ctx context.Context) ([]models.Channel, error)
}

// CommandService reacts to chat updates.
type CommandService interface {
	// HandleUpdate answers the /users command carried by update. Updates
	// without a message and messages with other text are ignored.
	HandleUpdate(ctx context.Context, update models.Update) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UsersServiceWrapper defines middleware composition for UsersService.
// Implementations wrap an existing UsersService to add behavior such as
// logging.
type UsersServiceWrapper interface {
	Wrap(UsersService) UsersService // returns a decorated UsersService applying additional behavior
}
