package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EnrollmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEnrollmentRepo(db *dbpg.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Enroll validates capacity and, when requireCredits is set, the ledger
// balance against the same state the writes commit against: the course row
// is locked FOR UPDATE and a credit-gated enroll holds a transaction-scoped
// advisory lock on the member id, so concurrent enrolls for the last spot
// or the last credit serialize instead of racing. The unique constraint on
// (course_id, member_id) backstops the duplicate check.
func (r *EnrollmentRepository) Enroll(ctx context.Context, courseID, memberID string, requireCredits bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capQuery := `SELECT capacity FROM courses WHERE id = $1 FOR UPDATE`
	var capacity int
	if err = tx.QueryRowContext(ctx, capQuery, courseID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCourseNotFound
		}
		return fmt.Errorf("lock course: %w", err)
	}

	existsQuery := `SELECT EXISTS (
					  SELECT 1 FROM enrollments WHERE course_id = $1 AND member_id = $2
					)`
	var enrolled bool
	if err = tx.QueryRowContext(ctx, existsQuery, courseID, memberID).Scan(&enrolled); err != nil {
		return fmt.Errorf("check enrollment: %w", err)
	}
	if enrolled {
		return domain.ErrAlreadyEnrolled
	}

	countQuery := `SELECT COUNT(*) FROM enrollments WHERE course_id = $1`
	var count int
	if err = tx.QueryRowContext(ctx, countQuery, courseID).Scan(&count); err != nil {
		return fmt.Errorf("count enrollments: %w", err)
	}
	if count >= capacity {
		return domain.ErrCourseFull
	}

	if requireCredits {
		// Serializes balance checks for the same member. An advisory lock on
		// the member id works whether or not a members row exists yet: the
		// auth sync may lag behind ledger entries written by grants and
		// webhook purchases, and a row lock on a missing row locks nothing.
		memberLock := `SELECT pg_advisory_xact_lock(hashtext($1))`
		if _, err = tx.ExecContext(ctx, memberLock, memberID); err != nil {
			return fmt.Errorf("lock member: %w", err)
		}

		balanceQuery := `SELECT COALESCE(SUM(delta), 0) FROM credits_ledger WHERE member_id = $1`
		var balance int
		if err = tx.QueryRowContext(ctx, balanceQuery, memberID).Scan(&balance); err != nil {
			return fmt.Errorf("sum ledger: %w", err)
		}
		if balance <= 0 {
			return domain.ErrInsufficientCredits
		}
	}

	now := time.Now().UTC()
	insertQuery := `INSERT INTO enrollments (course_id, member_id, created_at)
					VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, insertQuery, courseID, memberID, now); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyEnrolled
		}
		return fmt.Errorf("insert enrollment: %w", err)
	}

	if requireCredits {
		debitQuery := `INSERT INTO credits_ledger (member_id, delta, source, note, created_at)
					   VALUES ($1, -1, $2, $3, $4)`
		note := fmt.Sprintf("course enrollment %s", courseID)
		if _, err = tx.ExecContext(ctx, debitQuery, memberID, domain.SourceBooking, note, now); err != nil {
			return fmt.Errorf("insert booking debit: %w", err)
		}
	}

	return tx.Commit()
}

// Unenroll is idempotent: deleting a missing enrollment is not an error.
// The refund entry is written in the same transaction as the delete and
// only when a row was actually removed, so redelivered unenrolls cannot
// mint credits.
func (r *EnrollmentRepository) Unenroll(ctx context.Context, courseID, memberID string, refund bool) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	delQuery := `DELETE FROM enrollments WHERE course_id = $1 AND member_id = $2`
	res, err := tx.ExecContext(ctx, delQuery, courseID, memberID)
	if err != nil {
		return false, fmt.Errorf("delete enrollment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("enrollment rows affected: %w", err)
	}
	deleted := affected > 0

	if deleted && refund {
		refundQuery := `INSERT INTO credits_ledger (member_id, delta, source, note, created_at)
						VALUES ($1, 1, $2, $3, $4)`
		note := fmt.Sprintf("course unenrollment %s", courseID)
		if _, err = tx.ExecContext(ctx, refundQuery, memberID, domain.SourceUnbooking, note, time.Now().UTC()); err != nil {
			return false, fmt.Errorf("insert refund: %w", err)
		}
	}

	return deleted, tx.Commit()
}

func (r *EnrollmentRepository) Roster(ctx context.Context, courseID string) ([]domain.RosterEntry, error) {
	query := `SELECT e.member_id, e.created_at,
					 COALESCE(m.full_name, ''), COALESCE(m.first_name, ''),
					 COALESCE(m.last_name, ''), COALESCE(m.email, '')
			  FROM enrollments e
			  LEFT JOIN members m ON m.id = e.member_id
			  WHERE e.course_id = $1
			  ORDER BY e.created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	var res []domain.RosterEntry
	for rows.Next() {
		var entry domain.RosterEntry
		var fullName, firstName, lastName string
		if err = rows.Scan(&entry.MemberID, &entry.EnrolledAt, &fullName, &firstName, &lastName, &entry.Email); err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		entry.Name = domain.DisplayName(fullName, firstName, lastName, entry.MemberID)
		res = append(res, entry)
	}

	return res, rows.Err()
}
