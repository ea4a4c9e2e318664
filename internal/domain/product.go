package domain

import (
	"context"
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  *string   `json:"image_url"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductSaveRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL *string `json:"image_url"`
	Category *string `json:"category"`
}

type ProductRepository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, productID int64) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product, productID int64) error
	Delete(ctx context.Context, productID int64) error
}

type ProductService interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, productID int64) (*Product, error)
	Create(ctx context.Context, req ProductSaveRequest) error
	Update(ctx context.Context, req ProductSaveRequest, productID int64) error
	Delete(ctx context.Context, productID int64) error
}
