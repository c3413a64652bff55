package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Append writes one immutable ledger entry. Rows are never updated or
// deleted; corrections are new entries with an opposite delta. The insert is
// single-shot: retrying an ambiguous failure could apply the delta twice,
// and there is no dedupe key to catch it.
func (r *LedgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `INSERT INTO credits_ledger (member_id, delta, source, note, product_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Master.ExecContext(
		ctx, query,
		entry.MemberID, entry.Delta, entry.Source, entry.Note, entry.ProductID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}

	return nil
}

// Balance is the sum of deltas for a member. A member with no entries has a
// balance of zero, not an error.
func (r *LedgerRepository) Balance(ctx context.Context, memberID string) (int, error) {
	query := `SELECT COALESCE(SUM(delta), 0) FROM credits_ledger WHERE member_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}

	var balance int
	if err = row.Scan(&balance); err != nil {
		return 0, fmt.Errorf("scan balance: %w", err)
	}

	return balance, nil
}
