package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sialkot-shop/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access.
// List returns products in display order, newest additions first.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	AddReview(ctx context.Context, productID string, review *domain.Review) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a PostgreSQL-backed ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a product ahead of every existing product, along with any
// reviews it already carries
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	customization, err := encodeCustomization(product.Customization)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, category, description, image_url, price, customization, position, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, COALESCE(MIN(position), 0) - 1, $8, $9
		FROM products
	`

	_, err = tx.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Category,
		product.Description,
		product.ImageURL,
		nullString(product.Price),
		customization,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	// stored oldest first so that ordering by seq DESC matches the slice
	for i := len(product.Reviews) - 1; i >= 0; i-- {
		if err := insertReview(ctx, tx, product.ID, &product.Reviews[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of a product
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	customization, err := encodeCustomization(product.Customization)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $2, category = $3, description = $4, image_url = $5,
		    price = $6, customization = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Category,
		product.Description,
		product.ImageURL,
		nullString(product.Price),
		customization,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product and its reviews
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, category, description, image_url, price, customization, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	reviews, err := r.reviews(ctx, `WHERE product_id = $1`, id)
	if err != nil {
		return nil, err
	}
	product.Reviews = reviews[product.ID]
	if product.Reviews == nil {
		product.Reviews = []domain.Review{}
	}

	return product, nil
}

// List retrieves every product in display order
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, name, category, description, image_url, price, customization, created_at, updated_at
		FROM products
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	reviews, err := r.reviews(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		p.Reviews = reviews[p.ID]
		if p.Reviews == nil {
			p.Reviews = []domain.Review{}
		}
	}

	return products, nil
}

// AddReview stores a review as the product's most recent one
func (r *productRepository) AddReview(ctx context.Context, productID string, review *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE products SET updated_at = $2 WHERE id = $1`, productID, review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to touch product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	if err := insertReview(ctx, tx, productID, review); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit review: %w", err)
	}
	return nil
}

// reviews loads reviews newest first, grouped by product
func (r *productRepository) reviews(ctx context.Context, where string, args ...interface{}) (map[string][]domain.Review, error) {
	query := fmt.Sprintf(`
		SELECT id, product_id, author, rating, comment, created_at
		FROM reviews
		%s
		ORDER BY seq DESC
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.Review)
	for rows.Next() {
		var (
			review    domain.Review
			productID string
		)
		if err := rows.Scan(&review.ID, &productID, &review.Author, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		grouped[productID] = append(grouped[productID], review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return grouped, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		product       domain.Product
		price         sql.NullString
		customization []byte
	)
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Description,
		&product.ImageURL,
		&price,
		&customization,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Price = price.String
	if len(customization) > 0 {
		var opts domain.CustomizationOptions
		if err := json.Unmarshal(customization, &opts); err != nil {
			return nil, fmt.Errorf("failed to decode customization for %s: %w", product.ID, err)
		}
		product.Customization = &opts
	}
	return &product, nil
}

func insertReview(ctx context.Context, tx *sql.Tx, productID string, review *domain.Review) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO reviews (id, product_id, author, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, review.ID, productID, review.Author, review.Rating, review.Comment, review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func encodeCustomization(opts *domain.CustomizationOptions) ([]byte, error) {
	if opts == nil {
		return nil, nil
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode customization: %w", err)
	}
	return data, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
