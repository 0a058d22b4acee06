// Package checkout implements the three-step direct-order wizard:
// delivery location, payment method, then a summary from which the order
// is sent as a pre-filled message.
package checkout

import (
	"errors"

	"sialkot-shop/internal/cart"
	"sialkot-shop/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrLocationRequired = errors.New("delivery location is required")
	ErrNotAtSummary     = errors.New("order can only be sent from the summary step")
)

// Session is one checkout attempt over a snapshot of the cart. It is not
// safe for concurrent use.
type Session struct {
	step          Step
	items         []domain.CartItem
	location      string
	locationError string
	paymentMethod string
}

// NewSession starts checkout at the location step. items is copied.
func NewSession(items []domain.CartItem) *Session {
	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)
	return &Session{
		step:          StepLocation,
		items:         snapshot,
		paymentMethod: DefaultPaymentMethod,
	}
}

func (s *Session) Step() Step                { return s.step }
func (s *Session) Location() string          { return s.location }
func (s *Session) LocationError() string     { return s.locationError }
func (s *Session) PaymentMethod() string     { return s.paymentMethod }
func (s *Session) Subtotal() decimal.Decimal { return cart.Subtotal(s.items) }
func (s *Session) HasLocation() bool         { return s.location != "" }
func (s *Session) Items() []domain.CartItem  { return append([]domain.CartItem(nil), s.items...) }

// ApplyLocation records the outcome of a location request. A failure keeps
// whatever location was captured before and only sets the error text.
func (s *Session) ApplyLocation(result LocationResult) {
	if result.Err != nil {
		s.locationError = result.ErrorMessage()
		return
	}
	s.location = result.Location
	s.locationError = ""
}

// SelectPaymentMethod changes the selected payment method
func (s *Session) SelectPaymentMethod(name string) error {
	m, err := LookupPaymentMethod(name)
	if err != nil {
		return err
	}
	s.paymentMethod = m.Name
	return nil
}

// Next advances one step. Leaving the location step requires a captured
// location; otherwise the step is left unchanged and ErrLocationRequired
// is returned. Next on the summary step does nothing.
func (s *Session) Next() error {
	switch s.step {
	case StepLocation:
		if !s.HasLocation() {
			return ErrLocationRequired
		}
		s.step = StepPayment
	case StepPayment:
		s.step = StepSummary
	}
	return nil
}

// Back returns to the previous step; it does nothing on the location step
func (s *Session) Back() {
	switch s.step {
	case StepSummary:
		s.step = StepPayment
	case StepPayment:
		s.step = StepLocation
	}
}

// Send composes the outbound order. It is only allowed on the summary step.
// The caller is expected to discard the session afterwards; the cart it was
// taken from is left untouched.
func (s *Session) Send(m Messenger) (Order, error) {
	if s.step != StepSummary {
		return Order{}, ErrNotAtSummary
	}
	message := m.ComposeMessage(s.items, s.location, s.paymentMethod)
	return Order{
		Message: message,
		URL:     m.OrderURL(message),
	}, nil
}
