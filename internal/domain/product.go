package domain

import (
	"time"
)

// Product represents a product in the catalog
type Product struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Category      string                `json:"category"`
	Description   string                `json:"description"`
	ImageURL      string                `json:"image_url"`
	Price         string                `json:"price,omitempty"`
	Reviews       []Review              `json:"reviews"`
	Customization *CustomizationOptions `json:"customization,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CustomizationOptions lists the variants a product can be ordered in
type CustomizationOptions struct {
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	AllowQuantity bool     `json:"allow_quantity"`
}

// Review is a customer review. Reviews are never edited after submission.
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"date"`
}

// Category represents a product category
type Category struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// AverageRating returns the mean review rating, or 0 without reviews
func (p *Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range p.Reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(p.Reviews))
}

// HasSize reports whether size is one of the product's size options
func (p *Product) HasSize(size string) bool {
	if p.Customization == nil {
		return false
	}
	for _, s := range p.Customization.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether color is one of the product's color options
func (p *Product) HasColor(color string) bool {
	if p.Customization == nil {
		return false
	}
	for _, c := range p.Customization.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hold a snapshot that later
// catalog edits will not reach.
func (p *Product) Clone() Product {
	c := *p
	if p.Reviews != nil {
		c.Reviews = append([]Review(nil), p.Reviews...)
	}
	if p.Customization != nil {
		opts := *p.Customization
		opts.Sizes = append([]string(nil), p.Customization.Sizes...)
		opts.Colors = append([]string(nil), p.Customization.Colors...)
		c.Customization = &opts
	}
	return c
}
