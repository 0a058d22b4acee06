package transport

import (
	"net/http"
	"strconv"

	"sialkot-shop/internal/middleware"
	"sialkot-shop/internal/share"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxQRSize = 1024

// ShopShareResponse is the shop's share text, URL and per-platform links
type ShopShareResponse struct {
	Text  string       `json:"text"`
	URL   string       `json:"url"`
	Links []share.Link `json:"links"`
}

// ShareHandler handles HTTP requests for sharing the shop
type ShareHandler struct {
	sharer share.Sharer
	logger *zap.Logger
}

// NewShareHandler creates a new ShareHandler
func NewShareHandler(sharer share.Sharer, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{
		sharer: sharer,
		logger: logger,
	}
}

// RegisterRoutes registers all share routes
func (h *ShareHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/share", h.GetShareLinks)
	r.Get("/api/share/qr", h.GetQRCode)
}

// GetShareLinks returns the shop share links
func (h *ShareHandler) GetShareLinks(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, ShopShareResponse{
		Text:  h.sharer.ShopText(),
		URL:   h.sharer.ShopURL,
		Links: h.sharer.ShopLinks(),
	})
}

// GetQRCode renders a PNG QR code of the shop URL. ?size= sets the edge
// length in pixels.
func (h *ShareHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	size := share.DefaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 64 || n > maxQRSize {
			middleware.RespondWithError(w, http.StatusBadRequest, "size must be between 64 and 1024")
			return
		}
		size = n
	}

	png, err := share.QRCode(h.sharer.ShopURL, size)
	if err != nil {
		h.logger.Error("Failed to render shop QR code", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
