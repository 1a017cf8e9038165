package http

import (
	"testing"

	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/mock"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "s3cr3t"

type testMocks struct {
	users    *mock.MockUsersService
	commands *mock.MockCommandService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler builds a Handler backed by gomock services. botCfg decides
// whether the webhook route is served.
func newTestHandler(t *testing.T, botCfg config.Bot) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testMocks{
		users:    mock.NewMockUsersService(ctrl),
		commands: mock.NewMockCommandService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		UsersService:   mocks.users,
		CommandService: mocks.commands,
		AppInfoService: mocks.appInfo,
	}

	return NewHandler(services, botCfg, logger.Nop()), mocks
}

func webhookBotConfig() config.Bot {
	return config.Bot{Mode: config.BotModeWebhook, WebhookSecret: testWebhookSecret}
}
