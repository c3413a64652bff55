package ports

import (
	"context"

	"github.com/copdrey/resilience-backend/internal/domain"
)

type EnrollmentRepo interface {
	// Enroll applies the capacity check, the balance check and both writes
	// (enrollment row, booking debit) as one transaction.
	Enroll(ctx context.Context, courseID, memberID string, requireCredits bool) error
	// Unenroll reports whether an enrollment row was actually removed.
	Unenroll(ctx context.Context, courseID, memberID string, refund bool) (bool, error)
	Roster(ctx context.Context, courseID string) ([]domain.RosterEntry, error)
}
