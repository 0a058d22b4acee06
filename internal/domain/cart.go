package domain

// CartItem is one line of a cart. ID is derived from the product and the
// selected variant, so two adds of the same variant share a line.
type CartItem struct {
	ID            string  `json:"id"`
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selected_size,omitempty"`
	SelectedColor string  `json:"selected_color,omitempty"`
}
