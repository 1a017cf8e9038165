package main

import (
	"fmt"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/handler"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/server"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
	"github.com/MKhiriev/ts3-users-bot/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ts3-users-bot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("mode", cfg.Bot.Mode).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("channel_tree_url", cfg.Adapter.ChannelTreeURL).
		Msg("received configs")

	channelTreeAdapter, err := adapter.NewChannelTreeAdapter(cfg.Adapter.ChannelTreeURL, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating channel tree adapter")
	}

	botAdapter, err := adapter.NewBotAdapter(cfg.Bot, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot adapter")
	}

	services, err := service.NewServices(channelTreeAdapter, botAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var handlers *handler.Handlers
	if cfg.Server.HTTPAddress != "" {
		if handlers, err = handler.NewHandlers(services, *cfg, log); err != nil {
			log.Fatal().Err(err).Msg("error creating handlers")
		}
	}

	w := workers.NewWorkers()
	if cfg.Bot.Mode == config.BotModePolling {
		w = workers.NewWorkers(workers.NewUpdatePoller(botAdapter, services.CommandService, cfg.Workers, log))
	}

	srv, err := server.NewServer(handlers, w, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
