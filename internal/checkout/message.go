package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"sialkot-shop/internal/cart"
	"sialkot-shop/internal/domain"
)

// Order is a composed order ready to hand to the messaging service
type Order struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Messenger builds order messages addressed to the shop's messaging account
type Messenger struct {
	ShopName  string
	BaseURL   string
	Recipient string
}

// ComposeMessage renders the order text for the given cart snapshot
func (m Messenger) ComposeMessage(items []domain.CartItem, location, paymentMethod string) string {
	var b strings.Builder

	b.WriteString("Hello " + m.ShopName + ", I'd like to place an order.\n\n")
	b.WriteString("*Order Details:*\n")
	for _, item := range items {
		b.WriteString("- " + item.Product.Name + " (Qty: " + strconv.Itoa(item.Quantity))
		if item.SelectedSize != "" {
			b.WriteString(", Size: " + item.SelectedSize)
		}
		if item.SelectedColor != "" {
			b.WriteString(", Color: " + item.SelectedColor)
		}
		price := item.Product.Price
		if price == "" {
			price = "N/A"
		}
		b.WriteString(") - " + price + "\n")
	}
	b.WriteString("\n*Subtotal:* $" + cart.FormatAmount(cart.Subtotal(items)) + "\n")
	b.WriteString("\n*Delivery Location:*\n" + location + "\n")
	b.WriteString("\n*Payment Method:*\n" + paymentMethod + "\n")
	b.WriteString("\nPlease confirm my order and provide the total with shipping. Thank you!")

	return b.String()
}

// OrderURL returns the link that opens a chat with the shop pre-filled
// with message
func (m Messenger) OrderURL(message string) string {
	return strings.TrimRight(m.BaseURL, "/") + "/" + m.Recipient + "?text=" + EncodeComponent(message)
}

// componentUnescaper undoes the escapes url.QueryEscape applies to
// characters browsers leave alone in a URI component. A literal '+' is
// already %2B, so '+' here always stands for a space.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a single query value, the
// way browsers encode a URI component: spaces as %20, and the marks
// ! ' ( ) * kept as they are.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
