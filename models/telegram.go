// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Update is an incoming Bot API update. Only message updates are of
// interest; other update kinds arrive with a nil Message.
type Update struct {
	// UpdateID is the monotonically increasing update identifier used as
	// the long-polling offset.
	UpdateID int64 `json:"update_id"`

	// Message is the new incoming message, if any.
	Message *Message `json:"message,omitempty"`
}

// Message is the subset of a Bot API message the bot needs to answer a
// command.
type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	From      *User  `json:"from,omitempty"`
	Text      string `json:"text"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// User is the sender of a message.
type User struct {
	ID       int64  `json:"id"`
	IsBot    bool   `json:"is_bot"`
	Username string `json:"username,omitempty"`
}

// OutgoingMessage is the body of a sendMessage call.
type OutgoingMessage struct {
	// ChatID is the target chat.
	ChatID int64 `json:"chat_id"`

	// Text is the message body. The Bot API rejects empty text.
	Text string `json:"text"`

	// ReplyToMessageID makes the message a reply when non-zero.
	ReplyToMessageID int64 `json:"reply_to_message_id,omitempty"`
}

// BotResponse is the envelope every Bot API method answers with.
type BotResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// GetUpdatesRequest is the body of a getUpdates long-polling call.
type GetUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}
