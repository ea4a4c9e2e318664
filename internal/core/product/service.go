// Package product
package product

import (
	"context"

	"marketx/internal/domain"
)

type Service struct {
	repo domain.ProductRepository
}

func NewService(repo domain.ProductRepository) domain.ProductService {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, productID)
}

func (s *Service) Create(ctx context.Context, req domain.ProductSaveRequest) error {
	data := &domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		Category: req.Category,
	}

	return s.repo.Create(ctx, data)
}

// Update replaces every catalog field for the given id. A missing id is not
// an error: the store reports zero rows affected and the caller still gets a
// success acknowledgment, matching the delete semantics below.
func (s *Service) Update(ctx context.Context, req domain.ProductSaveRequest, productID int64) error {
	data := &domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		Category: req.Category,
	}

	return s.repo.Update(ctx, data, productID)
}

func (s *Service) Delete(ctx context.Context, productID int64) error {
	return s.repo.Delete(ctx, productID)
}
