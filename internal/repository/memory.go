package repository

import (
	"context"
	"sync"

	"sialkot-shop/internal/domain"
)

// MemoryProductRepository keeps the catalog in process. Callers always
// receive copies, so mutating a returned product never changes the store.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
}

// NewMemoryProductRepository creates an empty in-memory catalog
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(product)
	if stored.Reviews == nil {
		stored.Reviews = []domain.Review{}
	}
	r.products = append([]*domain.Product{stored}, r.products...)
	return nil
}

// Update overwrites the editable fields. Reviews are only changed
// through AddReview.
func (r *MemoryProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.find(product.ID)
	if stored == nil {
		return ErrProductNotFound
	}

	updated := clone(product)
	stored.Name = updated.Name
	stored.Category = updated.Category
	stored.Description = updated.Description
	stored.ImageURL = updated.ImageURL
	stored.Price = updated.Price
	stored.Customization = updated.Customization
	stored.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.find(id)
	if stored == nil {
		return nil, ErrProductNotFound
	}
	return clone(stored), nil
}

func (r *MemoryProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, len(r.products))
	for i, p := range r.products {
		products[i] = clone(p)
	}
	return products, nil
}

func (r *MemoryProductRepository) AddReview(_ context.Context, productID string, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.find(productID)
	if stored == nil {
		return ErrProductNotFound
	}
	stored.Reviews = append([]domain.Review{*review}, stored.Reviews...)
	stored.UpdatedAt = review.CreatedAt
	return nil
}

func (r *MemoryProductRepository) find(id string) *domain.Product {
	for _, p := range r.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clone(p *domain.Product) *domain.Product {
	c := p.Clone()
	return &c
}

// MemoryCategoryRepository keeps categories in insertion order
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []domain.Category
}

// NewMemoryCategoryRepository creates an empty in-memory category list
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{}
}

func (r *MemoryCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return ErrCategoryAlreadyExists
		}
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *MemoryCategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]*domain.Category, len(r.categories))
	for i := range r.categories {
		c := r.categories[i]
		categories[i] = &c
	}
	return categories, nil
}
