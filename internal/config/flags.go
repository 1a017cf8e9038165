package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "10s")
//	-channel-tree-url upstream channel tree endpoint
//	-adapter-timeout upstream request timeout (e.g., "10s")
//	-bot-token bot token
//	-bot-api-url bot API base URL
//	-bot-mode webhook or polling
//	-bot-webhook-secret webhook secret token
//	-poll-timeout long-polling timeout (e.g., "30s")
//	-refresh-interval viewer refresh interval (e.g., "30s")
//	-version application version
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout, adapterTimeout, pollTimeout, refreshInterval time.Duration
	var channelTreeURL, botToken, botAPIURL, botMode, webhookSecret string
	var version, jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 10s)")
	fs.StringVar(&channelTreeURL, "channel-tree-url", "", "Channel tree API endpoint")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Upstream request timeout (e.g., 10s)")
	fs.StringVar(&botToken, "bot-token", "", "Bot token")
	fs.StringVar(&botAPIURL, "bot-api-url", "", "Bot API base URL")
	fs.StringVar(&botMode, "bot-mode", "", "Bot mode: webhook or polling")
	fs.StringVar(&webhookSecret, "bot-webhook-secret", "", "Webhook secret token")
	fs.DurationVar(&pollTimeout, "poll-timeout", 0, "Long-polling timeout (e.g., 30s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Viewer refresh interval (e.g., 30s)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ChannelTreeURL: channelTreeURL,
			RequestTimeout: adapterTimeout,
		},
		Bot: Bot{
			Token:         botToken,
			APIURL:        botAPIURL,
			Mode:          botMode,
			WebhookSecret: webhookSecret,
		},
		Workers: Workers{
			PollTimeout:     pollTimeout,
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
