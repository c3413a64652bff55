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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) CreateFlow(ctx context.Context, f *domain.PaymentFlow) error {
	query := `INSERT INTO payment_flows (id, session_token, member_id, product_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)`
	_, err := r.db.Master.ExecContext(
		ctx, query,
		f.ID, f.SessionToken, f.MemberID, f.ProductID, domain.FlowStatusPending, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert payment flow: %w", err)
	}

	return nil
}

const flowColumns = `id, session_token, member_id, product_id, status,
					 COALESCE(mandate_id, ''), COALESCE(payment_id, ''), created_at, updated_at`

func (r *PaymentRepository) GetFlowBySessionToken(ctx context.Context, sessionToken string) (*domain.PaymentFlow, error) {
	query := `SELECT ` + flowColumns + `
			  FROM payment_flows
			  WHERE session_token=$1`
	return r.getFlow(ctx, query, sessionToken)
}

func (r *PaymentRepository) GetFlowByPaymentID(ctx context.Context, paymentID string) (*domain.PaymentFlow, error) {
	query := `SELECT ` + flowColumns + `
			  FROM payment_flows
			  WHERE payment_id=$1`
	return r.getFlow(ctx, query, paymentID)
}

func (r *PaymentRepository) getFlow(ctx context.Context, query string, arg any) (*domain.PaymentFlow, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get payment flow: %w", err)
	}

	var f domain.PaymentFlow
	if err = row.Scan(
		&f.ID, &f.SessionToken, &f.MemberID, &f.ProductID, &f.Status,
		&f.MandateID, &f.PaymentID, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFlowNotFound
		}
		return nil, fmt.Errorf("scan payment flow: %w", err)
	}

	return &f, nil
}

func (r *PaymentRepository) MarkCompleted(ctx context.Context, flowID, mandateID, paymentID string) error {
	query := `UPDATE payment_flows
			  SET status = $2, mandate_id = $3, payment_id = $4, updated_at = NOW()
			  WHERE id = $1`
	res, err := r.db.Master.ExecContext(ctx, query, flowID, domain.FlowStatusCompleted, mandateID, paymentID)
	if err != nil {
		return fmt.Errorf("mark flow completed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("flow rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrFlowNotFound
	}

	return nil
}

// ConfirmPayment applies a confirmed payment exactly once: the event insert,
// the credit grant and the flow settlement commit together, and a duplicate
// event id makes the whole call a no-op. The caller replies to the processor
// only after this returns.
func (r *PaymentRepository) ConfirmPayment(ctx context.Context, eventID, action, flowID string, entry *domain.LedgerEntry) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	applied, err := recordEvent(ctx, tx, eventID, action)
	if err != nil || !applied {
		return false, err
	}

	grantQuery := `INSERT INTO credits_ledger (member_id, delta, source, note, product_id, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, grantQuery,
		entry.MemberID, entry.Delta, entry.Source, entry.Note, entry.ProductID, time.Now().UTC(),
	); err != nil {
		return false, fmt.Errorf("insert purchase grant: %w", err)
	}

	if err = settleFlow(ctx, tx, flowID, domain.FlowStatusSettled); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func (r *PaymentRepository) FailPayment(ctx context.Context, eventID, action, flowID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	applied, err := recordEvent(ctx, tx, eventID, action)
	if err != nil || !applied {
		return false, err
	}

	if err = settleFlow(ctx, tx, flowID, domain.FlowStatusFailed); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// recordEvent is the dedupe gate: ON CONFLICT DO NOTHING means a redelivered
// event inserts zero rows and the caller skips the rest of the transaction.
func recordEvent(ctx context.Context, tx *sql.Tx, eventID, action string) (bool, error) {
	query := `INSERT INTO payment_events (transaction_id, action, recorded_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (transaction_id) DO NOTHING`
	res, err := tx.ExecContext(ctx, query, eventID, action, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("record payment event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("event rows affected: %w", err)
	}

	return affected > 0, nil
}

func settleFlow(ctx context.Context, tx *sql.Tx, flowID string, status domain.FlowStatus) error {
	query := `UPDATE payment_flows SET status = $2, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, flowID, status); err != nil {
		return fmt.Errorf("update flow status: %w", err)
	}
	return nil
}
