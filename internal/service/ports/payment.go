package ports

import (
	"context"

	"github.com/copdrey/resilience-backend/internal/domain"
)

type PaymentRepo interface {
	CreateFlow(ctx context.Context, flow *domain.PaymentFlow) error
	GetFlowBySessionToken(ctx context.Context, sessionToken string) (*domain.PaymentFlow, error)
	GetFlowByPaymentID(ctx context.Context, paymentID string) (*domain.PaymentFlow, error)
	MarkCompleted(ctx context.Context, flowID, mandateID, paymentID string) error
	// ConfirmPayment records the webhook event, credits the member and
	// settles the flow in one transaction. Returns false when the event id
	// was already processed.
	ConfirmPayment(ctx context.Context, eventID, action, flowID string, entry *domain.LedgerEntry) (bool, error)
	// FailPayment records the event and marks the flow failed. Same dedupe
	// semantics as ConfirmPayment.
	FailPayment(ctx context.Context, eventID, action, flowID string) (bool, error)
}
