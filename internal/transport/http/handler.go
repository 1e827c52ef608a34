// Package http exposes one pipeline run over HTTP: the department snapshot
// and parity analysis as JSON, plus a small HTML report page. The pipeline
// is batch and stateless, so the handler serves a fixed, precomputed result.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "graybook/internal/errors"
	"graybook/internal/services"
)

// Handler serves a precomputed pipeline result.
type Handler struct {
	result *services.Result
	logger *slog.Logger
}

// NewHandler creates a handler for the given pipeline result.
func NewHandler(result *services.Result, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		result: result,
		logger: logger.With(slog.String("component", "http_handler")),
	}
}

// Routes returns the router for the web surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(h.logger))

	r.Get("/", h.GetReportPage)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderError(w, r, apierrors.ErrNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/health", h.GetHealth)
		r.Get("/snapshot", h.GetSnapshot)
		r.Get("/parity", h.GetParity)
	})

	return r
}

// GetHealth reports service liveness.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// GetSnapshot returns the department snapshot.
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.result == nil {
		h.renderError(w, r, apierrors.NotFoundError("snapshot"))
		return
	}
	render.JSON(w, r, h.result.Snapshot)
}

// GetParity returns the grouped statistics and parity comparisons.
func (h *Handler) GetParity(w http.ResponseWriter, r *http.Request) {
	if h.result == nil {
		h.renderError(w, r, apierrors.NotFoundError("analysis"))
		return
	}
	render.JSON(w, r, h.result.Analysis)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, apiErr *apierrors.APIError) {
	if err := render.Render(w, r, apiErr); err != nil {
		h.logger.Error("failed to render error response", slog.String("error", err.Error()))
	}
}
