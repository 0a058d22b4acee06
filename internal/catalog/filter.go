// Package catalog contains the storefront's product catalog rules: filtering,
// the sample catalog, and the template used for new products.
package catalog

import (
	"strings"

	"sialkot-shop/internal/domain"
)

// AllCategories is the category selector value that matches every product
const AllCategories = "All"

// Filter returns the products in the selected category whose name contains
// search, ignoring case. Order is preserved and the input is not modified.
func Filter(products []*domain.Product, category, search string) []*domain.Product {
	needle := strings.ToLower(search)

	filtered := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if category != AllCategories && p.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
