// Package share builds social share links and QR codes for the shop.
package share

import (
	"encoding/base64"
	"fmt"
	"strings"

	"sialkot-shop/internal/checkout"
	"sialkot-shop/internal/domain"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the default QR code edge length in pixels
const DefaultQRSize = 256

// Link is a share target
type Link struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Payload is what a native share sheet needs
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Sharer builds share data for one shop
type Sharer struct {
	ShopName string
	ShopURL  string
	Tagline  string
}

// ShopText is the default message used when sharing the shop
func (s Sharer) ShopText() string {
	return fmt.Sprintf("Check out %s - %s: %s", s.ShopName, s.Tagline, s.ShopURL)
}

// ShopLinks returns the share links for the shop itself
func (s Sharer) ShopLinks() []Link {
	return Links(s.ShopURL, s.ShopText())
}

// Product returns the share payload for a product page
func (s Sharer) Product(p *domain.Product) Payload {
	return Payload{
		Title: p.Name,
		Text:  fmt.Sprintf("Check out this amazing product from %s: %s", s.ShopName, p.Name),
		URL:   strings.TrimRight(s.ShopURL, "/") + "/product/" + p.ID,
	}
}

// Links returns per-platform share links for a page URL and message text
func Links(pageURL, text string) []Link {
	enc := checkout.EncodeComponent
	return []Link{
		{Platform: "whatsapp", URL: "https://wa.me/?text=" + enc(text)},
		{Platform: "twitter", URL: "https://twitter.com/intent/tweet?text=" + enc(text)},
		{Platform: "facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + enc(pageURL) + "&quote=" + enc(text)},
	}
}

// QRCode encodes content as a PNG QR code
func QRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

// QRCodeDataURL encodes content as a QR code ready for an <img src>
func QRCodeDataURL(content string, size int) (string, error) {
	png, err := QRCode(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
