package service

import (
	"context"
	"errors"
	"fmt"

	"sialkot-shop/internal/cart"
	"sialkot-shop/internal/domain"
	"sialkot-shop/internal/repository"
	"sialkot-shop/internal/session"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOption = errors.New("selected option is not offered for this product")
)

// CartView is a read-only snapshot of a cart
type CartView struct {
	Items           []domain.CartItem `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	SubtotalDisplay string            `json:"subtotal_display"`
	ItemCount       int               `json:"item_count"`
}

// AddToCartInput selects a product variant. Empty size or color picks the
// product's first option.
type AddToCartInput struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

// CartService defines the interface for cart operations on a visitor session
type CartService interface {
	View(sess *session.Session) CartView
	Add(ctx context.Context, sess *session.Session, input AddToCartInput) (domain.CartItem, CartView, error)
	UpdateQuantity(sess *session.Session, itemID string, quantity int) CartView
	Remove(sess *session.Session, itemID string) CartView
}

type cartService struct {
	productRepo repository.ProductRepository
}

// NewCartService creates a new instance of CartService
func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{productRepo: productRepo}
}

func (s *cartService) View(sess *session.Session) CartView {
	var view CartView
	_ = sess.Do(func(st *session.State) error {
		view = newCartView(st.Cart)
		return nil
	})
	return view
}

func (s *cartService) Add(ctx context.Context, sess *session.Session, input AddToCartInput) (domain.CartItem, CartView, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return domain.CartItem{}, CartView{}, err
	}

	opts, err := ResolveOptions(product, input)
	if err != nil {
		return domain.CartItem{}, CartView{}, err
	}

	var (
		item domain.CartItem
		view CartView
	)
	_ = sess.Do(func(st *session.State) error {
		item = st.Cart.Add(*product, opts)
		view = newCartView(st.Cart)
		return nil
	})
	return item, view, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
// Unknown ids leave the cart unchanged.
func (s *cartService) UpdateQuantity(sess *session.Session, itemID string, quantity int) CartView {
	var view CartView
	_ = sess.Do(func(st *session.State) error {
		st.Cart.UpdateQuantity(itemID, quantity)
		view = newCartView(st.Cart)
		return nil
	})
	return view
}

func (s *cartService) Remove(sess *session.Session, itemID string) CartView {
	var view CartView
	_ = sess.Do(func(st *session.State) error {
		st.Cart.Remove(itemID)
		view = newCartView(st.Cart)
		return nil
	})
	return view
}

// ResolveOptions validates a variant selection against the product's
// customization options and fills in defaults
func ResolveOptions(product *domain.Product, input AddToCartInput) (cart.Options, error) {
	opts := cart.Options{
		Size:     input.Size,
		Color:    input.Color,
		Quantity: input.Quantity,
	}
	if opts.Quantity < 1 {
		opts.Quantity = 1
	}

	custom := product.Customization
	if custom == nil {
		if opts.Size != "" || opts.Color != "" {
			return cart.Options{}, fmt.Errorf("%w: %s has no size or color options", ErrInvalidOption, product.Name)
		}
		return opts, nil
	}

	switch {
	case opts.Size == "" && len(custom.Sizes) > 0:
		opts.Size = custom.Sizes[0]
	case opts.Size != "" && !product.HasSize(opts.Size):
		return cart.Options{}, fmt.Errorf("%w: size %q", ErrInvalidOption, opts.Size)
	}

	switch {
	case opts.Color == "" && len(custom.Colors) > 0:
		opts.Color = custom.Colors[0]
	case opts.Color != "" && !product.HasColor(opts.Color):
		return cart.Options{}, fmt.Errorf("%w: color %q", ErrInvalidOption, opts.Color)
	}

	if !custom.AllowQuantity {
		opts.Quantity = 1
	}

	return opts, nil
}

func newCartView(c *cart.Cart) CartView {
	subtotal := c.Subtotal()
	return CartView{
		Items:           c.Items(),
		Subtotal:        subtotal,
		SubtotalDisplay: "$" + cart.FormatAmount(subtotal),
		ItemCount:       c.ItemCount(),
	}
}
