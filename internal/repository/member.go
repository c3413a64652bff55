package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const memberColumns = `id, COALESCE(email, ''), COALESCE(first_name, ''), COALESCE(last_name, ''),
					   COALESCE(full_name, ''), COALESCE(phone, ''), credits, is_active, created_at, updated_at`

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return m, nil
}

// ListRange paginates members ordered by creation time; limit 0 means no
// limit. The export path fetches in pages of 1000.
func (r *MemberRepository) ListRange(ctx context.Context, offset, limit int) ([]*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  ORDER BY created_at ASC
			  OFFSET $1`
	args := []any{offset}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

// ReconcileCredits rewrites the denormalized credits column for every member
// whose cached value drifted from the ledger sum, and reports the drifts.
// The ledger is authoritative; the column is only a projection for clients.
func (r *MemberRepository) ReconcileCredits(ctx context.Context) ([]domain.CreditDrift, error) {
	query := `
		UPDATE members m
		SET credits = b.balance, updated_at = NOW()
		FROM (
			SELECT mm.id, mm.credits AS cached, COALESCE(SUM(l.delta), 0) AS balance
			FROM members mm
			LEFT JOIN credits_ledger l ON l.member_id = mm.id
			GROUP BY mm.id
		) b
		WHERE b.id = m.id AND m.credits <> b.balance
		RETURNING m.id, b.cached, b.balance`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("reconcile credits: %w", err)
	}
	defer rows.Close()

	var res []domain.CreditDrift
	for rows.Next() {
		var d domain.CreditDrift
		if err = rows.Scan(&d.MemberID, &d.Cached, &d.Actual); err != nil {
			return nil, fmt.Errorf("scan drift: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.FullName,
		&m.Phone, &m.Credits, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
