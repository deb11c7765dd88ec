package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

const pingTimeout = 2 * time.Second

// Greeting is the body of GET /.
const Greeting = "Knowledge base API is running"

// Health reports liveness of the API and its store.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

func (h *Health) Root(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, Greeting)
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := &HealthResponse{Status: "ok"}
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.ErrorContext(r.Context(), "Health handler: store ping failed",
			"error", err.Error())
		resp.Status = "unavailable"
		render.Status(r, http.StatusServiceUnavailable)
	}

	if err := render.Render(w, r, resp); err != nil {
		h.logger.ErrorContext(r.Context(), "Health handler: failed to render response",
			"error", err.Error())
	}
}
