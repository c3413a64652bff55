package reconciler

import (
	"context"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type creditReconciler interface {
	ReconcileCredits(ctx context.Context) ([]domain.CreditDrift, error)
}

// Reconciler periodically rewrites the denormalized members.credits column
// from the ledger. The ledger is the authoritative balance; the column only
// exists so clients can list members without summing the ledger, and drift
// (e.g. rows written by the legacy backend) heals on the next tick.
type Reconciler struct {
	members  creditReconciler
	interval time.Duration
	logger   logger.Logger
}

func New(members creditReconciler, interval time.Duration, logger logger.Logger) *Reconciler {
	return &Reconciler{
		members:  members,
		interval: interval,
		logger:   logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("credit reconciler started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("credit reconciler stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reconciler) tick(ctx context.Context) {
	drifts, err := r.members.ReconcileCredits(ctx)
	if err != nil {
		r.logger.Error("failed to reconcile credits",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drifts {
		r.logger.Warn("credit drift corrected",
			logger.String("member_id", d.MemberID),
			logger.Int("cached", d.Cached),
			logger.Int("ledger", d.Actual),
		)
	}
}
