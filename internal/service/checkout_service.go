package service

import (
	"context"
	"errors"

	"sialkot-shop/internal/cart"
	"sialkot-shop/internal/checkout"
	"sialkot-shop/internal/domain"
	"sialkot-shop/internal/session"
	"sialkot-shop/internal/share"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrNoCheckout = errors.New("no checkout in progress")
)

// CheckoutView is a read-only snapshot of the checkout wizard
type CheckoutView struct {
	Step            checkout.Step     `json:"step"`
	Items           []domain.CartItem `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	SubtotalDisplay string            `json:"subtotal_display"`
	Location        string            `json:"location"`
	LocationError   string            `json:"location_error,omitempty"`
	PaymentMethod   string            `json:"payment_method"`
	CanProceed      bool              `json:"can_proceed"`
}

// SentOrder is the outbound order link plus a scannable QR code of it
type SentOrder struct {
	checkout.Order
	QRCode string `json:"qr_code,omitempty"`
}

// CheckoutService drives the checkout wizard of a visitor session
type CheckoutService interface {
	Start(sess *session.Session) (CheckoutView, error)
	View(sess *session.Session) (CheckoutView, error)
	CaptureLocation(ctx context.Context, sess *session.Session, locator checkout.Locator) (CheckoutView, error)
	SelectPayment(sess *session.Session, method string) (CheckoutView, error)
	Next(sess *session.Session) (CheckoutView, error)
	Back(sess *session.Session) (CheckoutView, error)
	Send(sess *session.Session) (SentOrder, error)
	Cancel(sess *session.Session)
}

type checkoutService struct {
	messenger checkout.Messenger
	logger    *zap.Logger
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(messenger checkout.Messenger, logger *zap.Logger) CheckoutService {
	return &checkoutService{messenger: messenger, logger: logger}
}

// Start opens the wizard over a snapshot of the current cart, replacing any
// checkout already in progress
func (s *checkoutService) Start(sess *session.Session) (CheckoutView, error) {
	var view CheckoutView
	err := sess.Do(func(st *session.State) error {
		if st.Cart.IsEmpty() {
			return ErrEmptyCart
		}
		st.Checkout = checkout.NewSession(st.Cart.Items())
		view = newCheckoutView(st.Checkout)
		return nil
	})
	return view, err
}

func (s *checkoutService) View(sess *session.Session) (CheckoutView, error) {
	return s.apply(sess, func(*checkout.Session) error { return nil })
}

// CaptureLocation resolves the delivery location without holding the
// session, then applies the result to the checkout that asked for it
func (s *checkoutService) CaptureLocation(ctx context.Context, sess *session.Session, locator checkout.Locator) (CheckoutView, error) {
	var wizard *checkout.Session
	if err := sess.Do(func(st *session.State) error {
		if st.Checkout == nil {
			return ErrNoCheckout
		}
		wizard = st.Checkout
		return nil
	}); err != nil {
		return CheckoutView{}, err
	}

	result := checkout.Locate(ctx, locator)
	if result.Err != nil {
		s.logger.Warn("Failed to resolve delivery location",
			zap.String("session_id", sess.ID),
			zap.Error(result.Err),
		)
	}

	var view CheckoutView
	err := sess.Do(func(st *session.State) error {
		if st.Checkout != wizard {
			return ErrNoCheckout
		}
		wizard.ApplyLocation(result)
		view = newCheckoutView(wizard)
		return nil
	})
	return view, err
}

func (s *checkoutService) SelectPayment(sess *session.Session, method string) (CheckoutView, error) {
	return s.apply(sess, func(c *checkout.Session) error {
		return c.SelectPaymentMethod(method)
	})
}

func (s *checkoutService) Next(sess *session.Session) (CheckoutView, error) {
	return s.apply(sess, func(c *checkout.Session) error {
		return c.Next()
	})
}

func (s *checkoutService) Back(sess *session.Session) (CheckoutView, error) {
	return s.apply(sess, func(c *checkout.Session) error {
		c.Back()
		return nil
	})
}

// Send composes the order and closes the wizard. The cart is kept.
func (s *checkoutService) Send(sess *session.Session) (SentOrder, error) {
	var order checkout.Order
	err := sess.Do(func(st *session.State) error {
		if st.Checkout == nil {
			return ErrNoCheckout
		}
		var err error
		order, err = st.Checkout.Send(s.messenger)
		if err != nil {
			return err
		}
		st.Checkout = nil
		return nil
	})
	if err != nil {
		return SentOrder{}, err
	}

	sent := SentOrder{Order: order}
	qr, err := share.QRCodeDataURL(order.URL, share.DefaultQRSize)
	if err != nil {
		s.logger.Warn("Failed to render order QR code", zap.String("session_id", sess.ID), zap.Error(err))
	} else {
		sent.QRCode = qr
	}

	s.logger.Info("Order composed",
		zap.String("session_id", sess.ID),
		zap.Int("message_length", len(order.Message)),
	)
	return sent, nil
}

func (s *checkoutService) Cancel(sess *session.Session) {
	_ = sess.Do(func(st *session.State) error {
		st.Checkout = nil
		return nil
	})
}

func (s *checkoutService) apply(sess *session.Session, fn func(*checkout.Session) error) (CheckoutView, error) {
	var view CheckoutView
	err := sess.Do(func(st *session.State) error {
		if st.Checkout == nil {
			return ErrNoCheckout
		}
		if err := fn(st.Checkout); err != nil {
			return err
		}
		view = newCheckoutView(st.Checkout)
		return nil
	})
	return view, err
}

func newCheckoutView(c *checkout.Session) CheckoutView {
	subtotal := c.Subtotal()
	return CheckoutView{
		Step:            c.Step(),
		Items:           c.Items(),
		Subtotal:        subtotal,
		SubtotalDisplay: "$" + cart.FormatAmount(subtotal),
		Location:        c.Location(),
		LocationError:   c.LocationError(),
		PaymentMethod:   c.PaymentMethod(),
		CanProceed:      c.Step() != checkout.StepLocation || c.HasLocation(),
	}
}
