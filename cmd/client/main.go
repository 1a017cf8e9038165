package main

import (
	"fmt"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/client"
	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
	"github.com/MKhiriev/ts3-users-bot/internal/tui"
	"github.com/MKhiriev/ts3-users-bot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("ts3-users-viewer")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	channelTreeAdapter, err := adapter.NewChannelTreeAdapter(cfg.Adapter.ChannelTreeURL, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create channel tree adapter")
	}

	usersService := service.NewUsersLoggingService(log).
		Wrap(service.NewUsersService(channelTreeAdapter, log))

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(usersService, cfg.Workers.RefreshInterval, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
