package service

import (
	"context"
	"fmt"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports"
	"github.com/google/uuid"
)

type ProductService struct {
	repo ports.ProductRepo
}

func NewProductService(repo ports.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, input domain.CreateProductInput) (*domain.CreditProduct, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Credits <= 0 {
		return nil, fmt.Errorf("%w: credits must be positive", domain.ErrValidation)
	}
	if input.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price_cents must be positive", domain.ErrValidation)
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	product := &domain.CreditProduct{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Credits:    input.Credits,
		PriceCents: input.PriceCents,
		Active:     active,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) List(ctx context.Context, active *bool) ([]*domain.CreditProduct, error) {
	return s.repo.List(ctx, active)
}
