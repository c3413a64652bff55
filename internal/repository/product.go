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

type ProductRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProductRepo(db *dbpg.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.CreditProduct) error {
	query := `INSERT INTO credit_products (id, name, credits, price_cents, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Master.ExecContext(
		ctx, query,
		p.ID, p.Name, p.Credits, p.PriceCents, p.Active, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert credit product: %w", err)
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.CreditProduct, error) {
	query := `SELECT id, name, credits, price_cents, active, created_at
			  FROM credit_products
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get credit product: %w", err)
	}

	var p domain.CreditProduct
	if err = row.Scan(&p.ID, &p.Name, &p.Credits, &p.PriceCents, &p.Active, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan credit product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, active *bool) ([]*domain.CreditProduct, error) {
	query := `SELECT id, name, credits, price_cents, active, created_at
			  FROM credit_products
			  WHERE ($1::boolean IS NULL OR active = $1)
			  ORDER BY active DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, active)
	if err != nil {
		return nil, fmt.Errorf("list credit products: %w", err)
	}
	defer rows.Close()

	var res []*domain.CreditProduct
	for rows.Next() {
		var p domain.CreditProduct
		if err = rows.Scan(&p.ID, &p.Name, &p.Credits, &p.PriceCents, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit product: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
