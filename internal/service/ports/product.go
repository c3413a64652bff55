package ports

import (
	"context"

	"github.com/copdrey/resilience-backend/internal/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, product *domain.CreditProduct) error
	GetByID(ctx context.Context, id string) (*domain.CreditProduct, error)
	// List filters on the active flag when the pointer is non-nil.
	List(ctx context.Context, active *bool) ([]*domain.CreditProduct, error)
}
