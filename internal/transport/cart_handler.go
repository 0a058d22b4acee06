package transport

import (
	"net/http"

	"sialkot-shop/internal/domain"
	"sialkot-shop/internal/middleware"
	"sialkot-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddCartItemRequest represents an add-to-cart payload. Size and color
// default to the product's first option; quantity below 1 counts as 1.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Size      string `json:"size" validate:"max=32"`
	Color     string `json:"color" validate:"max=32"`
	Quantity  int    `json:"quantity" validate:"lte=999"`
}

// UpdateCartItemRequest sets a line quantity; zero or less removes the line
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,lte=999"`
}

// AddCartItemResponse is the added line and the resulting cart
type AddCartItemResponse struct {
	Item domain.CartItem  `json:"item"`
	Cart service.CartView `json:"cart"`
}

// CartHandler handles HTTP requests for the visitor's cart
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Patch("/items/{itemID}", h.UpdateItem)
		r.Delete("/items/{itemID}", h.RemoveItem)
	})
}

// GetCart returns the cart with subtotal and item count
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := visitorSession(w, r, h.logger)
	if !ok {
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, h.cartService.View(sess))
}

// AddItem adds a product variant, merging with an identical line
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := visitorSession(w, r, h.logger)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	item, view, err := h.cartService.Add(r.Context(), sess, service.AddToCartInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to add item to cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, AddCartItemResponse{Item: item, Cart: view})
}

// UpdateItem changes a line quantity. Unknown ids leave the cart unchanged.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := visitorSession(w, r, h.logger)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	view := h.cartService.UpdateQuantity(sess, pathParam(r, "itemID"), *req.Quantity)
	middleware.RespondWithJSON(w, http.StatusOK, view)
}

// RemoveItem deletes a line. Unknown ids leave the cart unchanged.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := visitorSession(w, r, h.logger)
	if !ok {
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, h.cartService.Remove(sess, pathParam(r, "itemID")))
}
