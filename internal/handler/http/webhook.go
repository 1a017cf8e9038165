// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/models"
)

const (
	// WebhookPath is the route the Bot API delivers updates to.
	WebhookPath = "/api/bot/webhook"

	// SecretTokenHeader carries the secret_token given to setWebhook.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	maxUpdateSize = 1 << 20
)

// webhook decodes a single update and hands it to the command service.
// The Bot API redelivers updates answered with a non-2xx status.
func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateSize)).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.webhook").Msg("invalid update was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidUpdate, err))
		return
	}

	if err := h.services.CommandService.HandleUpdate(r.Context(), update); err != nil {
		log.Err(err).
			Str("func", "*Handler.webhook").
			Int64("update_id", update.UpdateID).
			Msg("error handling update")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// withWebhookSecret rejects webhook calls whose secret token header does not
// match the configured secret. An empty secret disables the check.
func (h *Handler) withWebhookSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.webhookSecret != "" {
			got := r.Header.Get(SecretTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(h.webhookSecret)) != 1 {
				logger.FromRequest(r).Warn().Msg(ErrInvalidWebhookSecret.Error())
				writeError(w, ErrInvalidWebhookSecret)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
