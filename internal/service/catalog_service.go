package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sialkot-shop/internal/catalog"
	"sialkot-shop/internal/content"
	"sialkot-shop/internal/domain"
	"sialkot-shop/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidReview = errors.New("review needs an author, a comment and a rating from 1 to 5")
)

// ProductUpdate carries the owner-editable fields. Nil fields are left as
// they are; a blank name is ignored.
type ProductUpdate struct {
	Name        *string
	Price       *string
	Description *string
	ImageURL    *string
}

// ReviewInput is a customer-submitted review
type ReviewInput struct {
	Author  string
	Rating  int
	Comment string
}

// CatalogService defines the interface for catalog business logic
type CatalogService interface {
	Categories(ctx context.Context) ([]*domain.Category, error)
	List(ctx context.Context, category, search string) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	CreateFromImage(ctx context.Context, imageURL string) (*domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	AddReview(ctx context.Context, productID string, input ReviewInput) (*domain.Review, error)
	GenerateDescription(ctx context.Context, id string) (*domain.Product, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	gateway      *content.Gateway
	now          func() time.Time
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	gateway *content.Gateway,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		gateway:      gateway,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *catalogService) Categories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// List returns the catalog narrowed by category and a name search
func (s *catalogService) List(ctx context.Context, category, search string) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if category == "" {
		category = catalog.AllCategories
	}
	return catalog.Filter(products, category, search), nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// CreateFromImage adds a placeholder product built around an uploaded image
// at the front of the catalog
func (s *catalogService) CreateFromImage(ctx context.Context, imageURL string) (*domain.Product, error) {
	product := catalog.NewProduct(imageURL, s.now())
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *catalogService) Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}
	product.UpdatedAt = s.now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// AddReview records a review as the product's newest
func (s *catalogService) AddReview(ctx context.Context, productID string, input ReviewInput) (*domain.Review, error) {
	if strings.TrimSpace(input.Author) == "" || strings.TrimSpace(input.Comment) == "" ||
		input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidReview
	}

	review := &domain.Review{
		ID:        "rev-" + uuid.NewString(),
		Author:    strings.TrimSpace(input.Author),
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: s.now(),
	}

	if err := s.productRepo.AddReview(ctx, productID, review); err != nil {
		return nil, err
	}
	return review, nil
}

// GenerateDescription replaces the product description with generated text.
// When generation fails the gateway's fallback text is stored instead.
func (s *catalogService) GenerateDescription(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	description := s.gateway.ProductDescription(ctx, product.Name)
	return s.Update(ctx, id, ProductUpdate{Description: &description})
}
