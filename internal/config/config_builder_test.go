package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that an empty builder yields
// a config holding only defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAppVersion, cfg.App.Version)
	assert.Equal(t, DefaultBotAPIURL, cfg.Bot.APIURL)
	assert.Equal(t, DefaultBotMode, cfg.Bot.Mode)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPollTimeout, cfg.Workers.PollTimeout)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that a later non-zero value wins
// and zero values never erase earlier ones.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Version: "1.0.0"},
			Adapter: Adapter{ChannelTreeURL: "http://env/tree"},
		},
		&StructuredConfig{
			Adapter: Adapter{ChannelTreeURL: "http://json/tree", RequestTimeout: 3 * time.Second},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "http://json/tree", cfg.Adapter.ChannelTreeURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("BOT_TOKEN", "env-token")

	b := newTestBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-token", b.configs[0].Bot.Token)
}

func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("WORKERS_POLL_TIMEOUT", "forever")

	b := newTestBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newTestBuilder("-bot-token", "flag-token", "-bot-mode", BotModeWebhook)
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-token", b.configs[0].Bot.Token)
	assert.Equal(t, BotModeWebhook, b.configs[0].Bot.Mode)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newTestBuilder("-no-such-flag")
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Adapter.ChannelTreeURL = "http://ts3.local/api/tree"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "http://ts3.local/api/tree", b.configs[1].Adapter.ChannelTreeURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilderChain_EnvFlagsJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Bot.Mode = BotModeWebhook
	payload.Server.HTTPAddress = "0.0.0.0:8080"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("ADAPTER_CHANNEL_TREE_URL", "http://env/tree")
	t.Setenv("BOT_TOKEN", "env-token")

	cfg, err := newTestBuilder("-bot-token", "flag-token", "-c", path).
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)
	require.NoError(t, cfg.validate())

	assert.Equal(t, "http://env/tree", cfg.Adapter.ChannelTreeURL)
	assert.Equal(t, "flag-token", cfg.Bot.Token)
	assert.Equal(t, BotModeWebhook, cfg.Bot.Mode)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
}
