package service

import (
	"context"
	"fmt"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CreditService struct {
	ledgerRepo ports.LedgerRepo
	logger     logger.Logger
}

func NewCreditService(ledgerRepo ports.LedgerRepo, logger logger.Logger) *CreditService {
	return &CreditService{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Balance sums the ledger for the member. A member with no entries is a
// valid member with a balance of zero.
func (s *CreditService) Balance(ctx context.Context, memberID string) (int, error) {
	if memberID == "" {
		return 0, fmt.Errorf("%w: member_id is required", domain.ErrValidation)
	}

	return s.ledgerRepo.Balance(ctx, memberID)
}

// Grant is the unconditional administrative adjustment: any non-zero delta,
// no balance or capacity checks. Returns the new balance.
func (s *CreditService) Grant(ctx context.Context, memberID string, delta int, source domain.LedgerSource, note string) (int, error) {
	if memberID == "" {
		return 0, fmt.Errorf("%w: member_id is required", domain.ErrValidation)
	}
	if delta == 0 {
		return 0, fmt.Errorf("%w: delta must be non-zero", domain.ErrValidation)
	}
	if source == "" {
		source = domain.SourceAdmin
	}
	if !source.Valid() {
		return 0, fmt.Errorf("%w: unknown ledger source %q", domain.ErrValidation, source)
	}
	if note == "" {
		note = "manual adjustment"
	}

	entry := &domain.LedgerEntry{
		MemberID: memberID,
		Delta:    delta,
		Source:   source,
		Note:     note,
	}
	if err := s.ledgerRepo.Append(ctx, entry); err != nil {
		return 0, fmt.Errorf("append ledger entry: %w", err)
	}

	s.logger.Info("credits granted",
		logger.String("member_id", memberID),
		logger.Int("delta", delta),
		logger.String("source", string(source)),
	)

	return s.ledgerRepo.Balance(ctx, memberID)
}
