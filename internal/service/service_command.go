// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/app"
	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/models"
)

const (
	// UsersCommand is the only command the bot answers.
	UsersCommand = "/users"
	// MaxMessageLength is the Bot API limit on message text, in characters.
	MaxMessageLength = 4096
)

type commandService struct {
	usersService UsersService
	botAdapter   adapter.BotAdapter

	logger *logger.Logger
}

func NewCommandService(usersService UsersService, botAdapter adapter.BotAdapter, logger *logger.Logger) CommandService {
	return &commandService{
		usersService: usersService,
		botAdapter:   botAdapter,
		logger:       logger,
	}
}

func (c *commandService) HandleUpdate(ctx context.Context, update models.Update) error {
	msg := update.Message
	if msg == nil || !IsUsersCommand(msg.Text) {
		return nil
	}

	text, err := c.usersService.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("error answering %s in chat %d: %w", UsersCommand, msg.Chat.ID, err)
	}
	if text == "" {
		text = app.MsgNoUsersOnline
	}

	for i, chunk := range SplitMessage(text, MaxMessageLength) {
		reply := models.OutgoingMessage{ChatID: msg.Chat.ID, Text: chunk}
		if i == 0 {
			reply.ReplyToMessageID = msg.MessageID
		}

		if err = c.botAdapter.SendMessage(ctx, reply); err != nil {
			return fmt.Errorf("%w %d to chat %d: %w", ErrSendReply, i, msg.Chat.ID, err)
		}
	}

	logger.FromContextOr(ctx, c.logger).Debug().
		Int64("update_id", update.UpdateID).
		Int64("chat_id", msg.Chat.ID).
		Msg("users command answered")

	return nil
}

// IsUsersCommand reports whether text invokes /users. The command may be
// addressed to a bot ("/users@my_bot") and may carry arguments, which are
// ignored.
func IsUsersCommand(text string) bool {
	command, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	command, _, _ = strings.Cut(command, "@")

	return command == UsersCommand
}

// SplitMessage splits text into chunks of at most limit characters. Chunks
// end on line boundaries; a single line longer than limit is cut at the
// limit.
func SplitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		chunk  strings.Builder
		size   int
	)
	flush := func() {
		if size > 0 {
			chunks = append(chunks, chunk.String())
			chunk.Reset()
			size = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		lineSize := utf8.RuneCountInString(line)
		if size+lineSize > limit {
			flush()
		}

		for lineSize > limit {
			head, tail := splitRunes(line, limit)
			chunks = append(chunks, head)
			line = tail
			lineSize -= limit
		}

		if lineSize > 0 {
			chunk.WriteString(line)
			size += lineSize
		}
	}
	flush()

	return chunks
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
