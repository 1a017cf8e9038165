package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/users", h.listUsers)
	router.Get("/api/channels", h.listChannels)
	router.Get("/api/version/", h.getServerVersion)

	if h.webhookEnabled {
		router.With(h.withWebhookSecret).Post(WebhookPath, h.webhook)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
