package ports

import "context"

type RedirectFlowParams struct {
	SessionToken       string
	Description        string
	SuccessRedirectURL string
	PrefilledEmail     string
}

type RedirectFlow struct {
	ID          string
	RedirectURL string
}

type CompletedFlow struct {
	MandateID  string
	CustomerID string
}

type PaymentParams struct {
	MandateID      string
	AmountCents    int
	Currency       string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

// PaymentGateway is the outbound GoCardless surface. The redirect flow,
// mandate and payment lifecycle is owned entirely by the processor.
type PaymentGateway interface {
	CreateRedirectFlow(ctx context.Context, params RedirectFlowParams) (*RedirectFlow, error)
	CompleteRedirectFlow(ctx context.Context, flowID, sessionToken string) (*CompletedFlow, error)
	CreatePayment(ctx context.Context, params PaymentParams) (string, error)
}
