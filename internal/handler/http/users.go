package http

import (
	"net/http"

	"github.com/MKhiriev/ts3-users-bot/internal/logger"
	"github.com/MKhiriev/ts3-users-bot/internal/utils"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	text, err := h.services.UsersService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteText(w, text, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error writing response")
	}
}

func (h *Handler) listChannels(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	channels, err := h.services.UsersService.ListChannels(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listChannels").Msg("error listing channels")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, channels, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listChannels").Msg("error writing response")
	}
}
