package ports

import (
	"context"

	"github.com/copdrey/resilience-backend/internal/domain"
)

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	Balance(ctx context.Context, memberID string) (int, error)
}
