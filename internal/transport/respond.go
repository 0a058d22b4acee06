package transport

import (
	"errors"
	"net/http"
	"net/url"

	"sialkot-shop/internal/checkout"
	"sialkot-shop/internal/content"
	"sialkot-shop/internal/media"
	"sialkot-shop/internal/middleware"
	"sialkot-shop/internal/repository"
	"sialkot-shop/internal/service"
	"sialkot-shop/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// statusFor maps domain errors to HTTP status codes. Anything unknown is a
// server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, content.ErrUnknownKind):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidOption),
		errors.Is(err, service.ErrInvalidReview),
		errors.Is(err, checkout.ErrUnknownPaymentMethod),
		errors.Is(err, content.ErrEmptyInput),
		errors.Is(err, media.ErrEmpty):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrNoCheckout),
		errors.Is(err, checkout.ErrLocationRequired),
		errors.Is(err, checkout.ErrNotAtSummary):
		return http.StatusConflict
	case errors.Is(err, media.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, media.ErrNotImage):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes err with its mapped status. Server errors
// are logged and replaced by fallback so internals never leak.
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, zap.Error(err))
		middleware.RespondWithError(w, status, fallback)
		return
	}
	middleware.RespondWithError(w, status, err.Error())
}

// decodeRequest decodes and validates a JSON body, writing the error
// response itself on failure
func decodeRequest(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		middleware.RespondWithDecodeError(w, err)
		return false
	}
	return true
}

// visitorSession returns the session attached by SessionMiddleware
func visitorSession(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (*session.Session, bool) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		logger.Error("No session on request", zap.String("path", r.URL.Path))
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return nil, false
	}
	return sess, true
}

// pathParam returns an unescaped URL parameter. Cart item ids may contain
// '#' and spaces from color and size names.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	// chi matches on RawPath when set; otherwise Path is already decoded
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// orPassThrough returns mw, or a no-op middleware when mw is nil
func orPassThrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}
