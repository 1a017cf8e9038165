// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/ts3-users-bot/internal/adapter"
	"github.com/MKhiriev/ts3-users-bot/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUpstreamUnavailable):
		return "Отсутствует сеть или сервер TeamSpeak недоступен"
	case errors.Is(err, service.ErrParseChannelTree):
		return "Сервер вернул некорректное дерево каналов"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Сервер не ответил вовремя"
	}

	return err.Error()
}
