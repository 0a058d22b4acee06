package repository

import (
	"context"
	"fmt"

	"sialkot-shop/internal/catalog"
)

// Seed loads the sample categories and products into empty repositories.
// Repositories that already hold data are left untouched.
func Seed(ctx context.Context, products ProductRepository, categories CategoryRepository) error {
	existingCategories, err := categories.List(ctx)
	if err != nil {
		return err
	}
	if len(existingCategories) == 0 {
		for _, c := range catalog.Categories() {
			c := c
			if err := categories.Create(ctx, &c); err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.Name, err)
			}
		}
	}

	existingProducts, err := products.List(ctx)
	if err != nil {
		return err
	}
	if len(existingProducts) > 0 {
		return nil
	}

	// Create prepends, so insert back to front to keep the sample order
	samples := catalog.SampleProducts()
	for i := len(samples) - 1; i >= 0; i-- {
		if err := products.Create(ctx, samples[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", samples[i].ID, err)
		}
	}
	return nil
}
