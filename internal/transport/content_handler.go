package transport

import (
	"errors"
	"io"
	"net/http"

	"sialkot-shop/internal/content"
	"sialkot-shop/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GenerateContentRequest carries the text a content kind is generated from.
// Slogans and heritage blurbs take no input and may omit the body.
type GenerateContentRequest struct {
	Input string `json:"input" validate:"max=2000"`
}

// GenerateContentResponse is generated (or fallback) text
type GenerateContentResponse struct {
	Kind content.Kind `json:"kind"`
	Text string       `json:"text"`
}

// ContentHandler exposes the content generation gateway
type ContentHandler struct {
	gateway *content.Gateway
	logger  *zap.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(gateway *content.Gateway, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		gateway: gateway,
		logger:  logger,
	}
}

// RegisterRoutes registers the content route behind limiter
func (h *ContentHandler) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	r.With(orPassThrough(limiter)).Post("/api/content/{kind}", h.Generate)
}

// Generate runs one gateway operation
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	kind, err := content.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to generate content")
		return
	}

	// an empty body, chunked or not, means no input
	var req GenerateContentRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return
	}

	text, err := h.gateway.Generate(r.Context(), kind, req.Input)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to generate content")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, GenerateContentResponse{Kind: kind, Text: text})
}
