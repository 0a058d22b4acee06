package transport

import (
	"errors"
	"net/http"

	"sialkot-shop/internal/checkout"
	"sialkot-shop/internal/middleware"
	"sialkot-shop/internal/service"
	"sialkot-shop/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LocationRequest reports the outcome of the client's position lookup:
// either coordinates or the error message the client got
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Error     string   `json:"error" validate:"max=200"`
}

// PaymentRequest selects a payment method
type PaymentRequest struct {
	Method string `json:"method" validate:"required"`
}

// CheckoutHandler handles HTTP requests for the checkout wizard
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// RegisterRoutes registers all checkout routes
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/checkout", func(r chi.Router) {
		r.Get("/payment-methods", h.ListPaymentMethods)
		r.Post("/", h.Start)
		r.Get("/", h.Get)
		r.Delete("/", h.Cancel)
		r.Post("/location", h.CaptureLocation)
		r.Put("/payment", h.SelectPayment)
		r.Post("/next", h.Next)
		r.Post("/back", h.Back)
		r.Post("/send", h.Send)
	})
}

// ListPaymentMethods returns the accepted payment methods and their details
func (h *CheckoutHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, checkout.PaymentMethods())
}

// Start opens the wizard over the current cart
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusCreated, func(sv service.CheckoutService, sess *session.Session) (service.CheckoutView, error) {
		return sv.Start(sess)
	})
}

// Get returns the wizard state
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, func(sv service.CheckoutService, sess *session.Session) (service.CheckoutView, error) {
		return sv.View(sess)
	})
}

// Cancel discards the wizard; the cart is kept
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := visitorSession(w, r, h.logger)
	if !ok {
		return
	}
	h.checkoutService.Cancel(sess)
	w.WriteHeader(http.StatusNoContent)
}

// CaptureLocation applies the client's location lookup
func (h *CheckoutHandler) CaptureLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	var locator checkout.ReportedPosition
	switch {
	case req.Error != "":
		locator.Err = errors.New(req.Error)
	case req.Latitude != nil && req.Longitude != nil:
		locator.Coordinates = checkout.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	default:
		middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
			{Field: "latitude", Message: "latitude and longitude are required unless error is set"},
		})
		return
	}

	h.respond(w, r, http.StatusOK, func(sv service.CheckoutService, sess *session.Session) (service.CheckoutView, error) {
		return sv.CaptureLocation(r.Context(), sess, locator)
	})
}

// SelectPayment changes the payment method
func (h *CheckoutHandler) SelectPayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	h.respond(w, r, http.StatusOK, func(sv service.CheckoutService, sess *session.Session) (service.CheckoutView, error) {
		return sv.SelectPayment(sess, req.Method)
	})
}

// Next advances the wizard
func (h *CheckoutHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, func(sv service.CheckoutService, sess *session.Session) (service.CheckoutView, error) {
		return sv.Next(sess)
	})
}

// Back returns to the previous step
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, func(sv service.CheckoutService, sess *session.Session) (service.CheckoutView, error) {
		return sv.Back(sess)
	})
}

// Send composes the order message and link
func (h *CheckoutHandler) Send(w http.ResponseWriter, r *http.Request) {
	sess, ok := visitorSession(w, r, h.logger)
	if !ok {
		return
	}

	order, err := h.checkoutService.Send(sess)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to send order")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, r *http.Request, status int, fn func(service.CheckoutService, *session.Session) (service.CheckoutView, error)) {
	sess, ok := visitorSession(w, r, h.logger)
	if !ok {
		return
	}

	view, err := fn(h.checkoutService, sess)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "checkout failed")
		return
	}
	middleware.RespondWithJSON(w, status, view)
}
