package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketx/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewProductRepository(db *pgxpool.Pool, timeout time.Duration) domain.ProductRepository {
	return &ProductRepository{db: db, timeout: timeout}
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, name, price, image_url, category, created_at
		FROM products
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.ImageURL,
			&p.Category,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, name, price, image_url, category, created_at
		FROM products
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, productID)

	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.ImageURL,
		&p.Category,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO products (name, price, image_url, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.ImageURL,
		product.Category,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// Update and Delete do not check RowsAffected: touching an absent id is
// acknowledged as success, keeping both operations idempotent.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product, productID int64) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE products
		SET name = $1, price = $2, image_url = $3, category = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query,
		product.Name,
		product.Price,
		product.ImageURL,
		product.Category,
		productID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID int64) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
