package ports

import (
	"context"

	"github.com/copdrey/resilience-backend/internal/domain"
)

type MemberRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	ListRange(ctx context.Context, offset, limit int) ([]*domain.Member, error)
	ReconcileCredits(ctx context.Context) ([]domain.CreditDrift, error)
}
