package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ts3-users-bot/internal/config"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/utils"
	"github.com/MKhiriev/ts3-users-bot/models"
)

const redactedToken = "<token>"

type botAdapter struct {
	client *utils.HTTPClient

	token          string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewBotAdapter constructs a resty implementation of [BotAdapter] talking to
// botCfg.APIURL with botCfg.Token.
//
// The underlying client has no global timeout because getUpdates holds the
// connection open for the whole long-polling window; every call derives its
// own deadline from requestTimeout instead.
func NewBotAdapter(botCfg config.Bot, requestTimeout time.Duration, log *logger.Logger) (BotAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(botCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bot api url: %w", err)
	}

	token := strings.TrimSpace(botCfg.Token)
	if token == "" {
		return nil, errors.New("empty bot token")
	}

	return &botAdapter{
		client:         utils.NewHTTPClient(baseURL, 0),
		token:          token,
		requestTimeout: requestTimeout,
		logger:         log,
	}, nil
}

// SendMessage implements [BotAdapter]. It POSTs msg to /bot{token}/sendMessage.
func (b *botAdapter) SendMessage(ctx context.Context, msg models.OutgoingMessage) error {
	ctx, cancel := b.withTimeout(ctx, 0)
	defer cancel()

	if _, err := callBot[json.RawMessage](ctx, b, "sendMessage", msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	b.logger.Debug().
		Int64("chat_id", msg.ChatID).
		Int("text_len", len(msg.Text)).
		Msg("message sent")

	return nil
}

// GetUpdates implements [BotAdapter]. It POSTs to /bot{token}/getUpdates and
// allows the request to stay open for timeout plus the regular request
// timeout.
func (b *botAdapter) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]models.Update, error) {
	ctx, cancel := b.withTimeout(ctx, timeout)
	defer cancel()

	req := models.GetUpdatesRequest{
		Offset:         offset,
		Timeout:        int(timeout / time.Second),
		AllowedUpdates: []string{"message"},
	}

	updates, err := callBot[[]models.Update](ctx, b, "getUpdates", req)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	return updates, nil
}

func (b *botAdapter) withTimeout(ctx context.Context, extra time.Duration) (context.Context, context.CancelFunc) {
	if b.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.requestTimeout+extra)
}

// callBot performs one Bot API method and returns the decoded result.
// The token is part of the URL, so transport errors are redacted before
// they leave the adapter.
func callBot[T any](ctx context.Context, b *botAdapter, method string, body any) (T, error) {
	var envelope models.BotResponse[T]

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/bot" + b.token + "/" + method)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return envelope.Result, ctxErr
		}
		return envelope.Result, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, b.redact(err.Error()))
	}

	if decodeErr := json.Unmarshal(resp.Body(), &envelope); decodeErr != nil {
		if err = mapHTTPError(resp); err != nil {
			return envelope.Result, fmt.Errorf("%w: %w", ErrBotAPI, err)
		}
		return envelope.Result, fmt.Errorf("%w: decode %s response: %w", ErrBotAPI, method, decodeErr)
	}

	if !envelope.OK {
		description := envelope.Description
		if description == "" {
			description = "ok=false"
		}
		return envelope.Result, fmt.Errorf("%w: %d %s", ErrBotAPI, envelope.ErrorCode, description)
	}

	return envelope.Result, nil
}

func (b *botAdapter) redact(s string) string {
	return strings.ReplaceAll(s, b.token, redactedToken)
}
