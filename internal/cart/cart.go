// Package cart holds the in-memory shopping cart of a single storefront session.
package cart

import (
	"strings"

	"sialkot-shop/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultVariant stands in for an unselected size or color in item ids.
const DefaultVariant = "default"

// Options describes the variant and amount being added
type Options struct {
	Size     string
	Color    string
	Quantity int
}

// Cart is an ordered list of items; insertion order is display order.
// It is not safe for concurrent use; callers serialize access per session.
type Cart struct {
	items []domain.CartItem
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// ItemID derives the cart line identity for a product variant
func ItemID(productID, size, color string) string {
	if size == "" {
		size = DefaultVariant
	}
	if color == "" {
		color = DefaultVariant
	}
	return productID + "-" + size + "-" + color
}

// Add merges the variant into an existing line or appends a new one and
// returns the resulting line. Quantity is expected to be at least 1.
func (c *Cart) Add(product domain.Product, opts Options) domain.CartItem {
	id := ItemID(product.ID, opts.Size, opts.Color)

	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity += opts.Quantity
		return c.items[i]
	}

	item := domain.CartItem{
		ID:            id,
		Product:       product.Clone(),
		Quantity:      opts.Quantity,
		SelectedSize:  opts.Size,
		SelectedColor: opts.Color,
	}
	c.items = append(c.items, item)
	return item
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.removeAt(i)
		return
	}
	c.items[i].Quantity = quantity
}

// Remove deletes a line if present
func (c *Cart) Remove(id string) {
	if i := c.indexOf(id); i >= 0 {
		c.removeAt(i)
	}
}

// Get returns the line with the given id
func (c *Cart) Get(id string) (domain.CartItem, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return domain.CartItem{}, false
}

// Items returns a copy of the cart lines in display order
func (c *Cart) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal sums price times quantity over all lines
func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.items)
}

// ItemCount sums quantities over all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Subtotal sums price times quantity over items
func Subtotal(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ParsePrice(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// FormatAmount renders an amount with two decimals
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// ParsePrice extracts the numeric value of a display price such as "$45.00".
// Every character other than a digit or '.' is dropped, then the longest
// leading decimal number is used. Anything unparseable is worth 0.
func ParsePrice(display string) decimal.Decimal {
	cleaned := make([]byte, 0, len(display))
	for i := 0; i < len(display); i++ {
		ch := display[i]
		if (ch >= '0' && ch <= '9') || ch == '.' {
			cleaned = append(cleaned, ch)
		}
	}

	end := 0
	digits := 0
	seenDot := false
	for end < len(cleaned) {
		ch := cleaned[end]
		if ch == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else {
			digits++
		}
		end++
	}
	if digits == 0 {
		return decimal.Zero
	}

	number := strings.TrimSuffix(string(cleaned[:end]), ".")
	if strings.HasPrefix(number, ".") {
		number = "0" + number
	}

	value, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero
	}
	return value
}
