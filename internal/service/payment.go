package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/gocardless"
	"github.com/copdrey/resilience-backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const paymentCurrency = "EUR"

const defaultMandateDescription = "Mandat SEPA Résilience Studio"

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	productRepo ports.ProductRepo
	memberRepo  ports.MemberRepo
	gateway     ports.PaymentGateway
	locker      ports.EventLocker
	notifier    ports.StudioNotifier
	logger      logger.Logger

	publicBaseURL  string
	deepLinkScheme string
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	productRepo ports.ProductRepo,
	memberRepo ports.MemberRepo,
	gateway ports.PaymentGateway,
	locker ports.EventLocker,
	notifier ports.StudioNotifier,
	logger logger.Logger,
	publicBaseURL, deepLinkScheme string,
) *PaymentService {
	return &PaymentService{
		paymentRepo:    paymentRepo,
		productRepo:    productRepo,
		memberRepo:     memberRepo,
		gateway:        gateway,
		locker:         locker,
		notifier:       notifier,
		logger:         logger,
		publicBaseURL:  publicBaseURL,
		deepLinkScheme: deepLinkScheme,
	}
}

// CreateRedirectFlow opens a GoCardless hosted mandate-setup page for the
// member and records the flow keyed by our session token, which is the only
// correlator we get back on the success callback.
func (s *PaymentService) CreateRedirectFlow(ctx context.Context, input domain.CreateFlowInput) (string, error) {
	if input.SessionToken == "" {
		return "", fmt.Errorf("%w: session_token is required", domain.ErrValidation)
	}
	if input.MemberID == "" {
		return "", fmt.Errorf("%w: member_id is required", domain.ErrValidation)
	}
	if input.ProductID == "" {
		return "", fmt.Errorf("%w: product_id is required", domain.ErrValidation)
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return "", fmt.Errorf("check product: %w", err)
	}
	if !product.Active {
		return "", domain.ErrProductNotFound
	}

	// Members are owned by the auth system and may not be synced yet; a
	// missing row only costs the prefilled email.
	var email string
	if member, err := s.memberRepo.GetByID(ctx, input.MemberID); err == nil {
		email = member.Email
	} else if !errors.Is(err, domain.ErrMemberNotFound) {
		return "", fmt.Errorf("check member: %w", err)
	}

	description := input.Description
	if description == "" {
		description = defaultMandateDescription
	}

	flow, err := s.gateway.CreateRedirectFlow(ctx, ports.RedirectFlowParams{
		SessionToken:       input.SessionToken,
		Description:        description,
		SuccessRedirectURL: s.successURL(input.SessionToken),
		PrefilledEmail:     email,
	})
	if err != nil {
		return "", err
	}

	if err = s.paymentRepo.CreateFlow(ctx, &domain.PaymentFlow{
		ID:           flow.ID,
		SessionToken: input.SessionToken,
		MemberID:     input.MemberID,
		ProductID:    input.ProductID,
	}); err != nil {
		return "", fmt.Errorf("persist flow: %w", err)
	}

	s.logger.Info("redirect flow created",
		logger.String("flow_id", flow.ID),
		logger.String("member_id", input.MemberID),
		logger.String("product_id", input.ProductID),
	)

	return flow.RedirectURL, nil
}

// CompleteRedirectFlow finishes mandate setup and immediately charges the
// product price against the new mandate. The flow id doubles as the payment
// idempotency key, so replaying the success callback cannot double-charge.
// Returns the deep link that sends the payer back into the mobile app.
func (s *PaymentService) CompleteRedirectFlow(ctx context.Context, flowID, sessionToken string) (string, error) {
	if flowID == "" || sessionToken == "" {
		return "", fmt.Errorf("%w: redirect_flow_id and session_token are required", domain.ErrValidation)
	}

	flow, err := s.paymentRepo.GetFlowBySessionToken(ctx, sessionToken)
	if err != nil {
		return "", fmt.Errorf("look up flow: %w", err)
	}
	if flow.ID != flowID {
		return "", domain.ErrFlowNotFound
	}

	completed, err := s.gateway.CompleteRedirectFlow(ctx, flowID, sessionToken)
	if err != nil {
		return "", err
	}

	product, err := s.productRepo.GetByID(ctx, flow.ProductID)
	if err != nil {
		return "", fmt.Errorf("load product: %w", err)
	}

	paymentID, err := s.gateway.CreatePayment(ctx, ports.PaymentParams{
		MandateID:      completed.MandateID,
		AmountCents:    product.PriceCents,
		Currency:       paymentCurrency,
		Description:    product.Name,
		IdempotencyKey: flow.ID,
		Metadata: map[string]string{
			"member_id":  flow.MemberID,
			"product_id": flow.ProductID,
		},
	})
	if err != nil {
		return "", err
	}

	if err = s.paymentRepo.MarkCompleted(ctx, flow.ID, completed.MandateID, paymentID); err != nil {
		return "", fmt.Errorf("mark flow completed: %w", err)
	}

	s.logger.Info("redirect flow completed",
		logger.String("flow_id", flow.ID),
		logger.String("mandate_id", completed.MandateID),
		logger.String("payment_id", paymentID),
	)

	return fmt.Sprintf("%s://gc/success?mandate=%s&credits=%d",
		s.deepLinkScheme, url.QueryEscape(completed.MandateID), product.Credits), nil
}

// HandleWebhook applies GoCardless payment events. Credits are granted
// exactly once per event id: a per-event lock narrows the race window and
// the payment_events insert inside the repository transaction is the
// authoritative dedupe. Any error aborts the batch so the processor
// redelivers.
func (s *PaymentService) HandleWebhook(ctx context.Context, events []gocardless.Event) error {
	for _, ev := range events {
		if ev.ResourceType != "payments" {
			continue
		}

		switch ev.Action {
		case "confirmed", "paid_out":
			if err := s.applyConfirmed(ctx, ev); err != nil {
				return err
			}
		case "failed", "cancelled", "charged_back":
			if err := s.applyFailed(ctx, ev); err != nil {
				return err
			}
		default:
			s.logger.Debug("ignoring payment event",
				logger.String("event_id", ev.ID),
				logger.String("action", ev.Action),
			)
		}
	}

	return nil
}

func (s *PaymentService) applyConfirmed(ctx context.Context, ev gocardless.Event) error {
	unlock, err := s.locker.Lock(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("lock event %s: %w", ev.ID, err)
	}
	defer unlock.Unlock(ctx)

	flow, err := s.paymentRepo.GetFlowByPaymentID(ctx, ev.Links.Payment)
	if err != nil {
		if errors.Is(err, domain.ErrFlowNotFound) {
			// Not a payment this backend initiated; acknowledge and move on.
			s.logger.Warn("webhook for unknown payment",
				logger.String("event_id", ev.ID),
				logger.String("payment_id", ev.Links.Payment),
			)
			return nil
		}
		return fmt.Errorf("look up flow: %w", err)
	}

	product, err := s.productRepo.GetByID(ctx, flow.ProductID)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}

	productID := flow.ProductID
	entry := &domain.LedgerEntry{
		MemberID:  flow.MemberID,
		Delta:     product.Credits,
		Source:    domain.SourcePurchase,
		Note:      fmt.Sprintf("credit purchase %s", product.Name),
		ProductID: &productID,
	}

	applied, err := s.paymentRepo.ConfirmPayment(ctx, ev.ID, ev.Action, flow.ID, entry)
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}
	if !applied {
		s.logger.Debug("duplicate payment event skipped",
			logger.String("event_id", ev.ID),
		)
		return nil
	}

	s.logger.Info("payment confirmed",
		logger.String("event_id", ev.ID),
		logger.String("member_id", flow.MemberID),
		logger.Int("credits", product.Credits),
	)

	go s.notifier.NotifyPaymentConfirmed(context.WithoutCancel(ctx), flow.MemberID, product.Credits)

	return nil
}

func (s *PaymentService) applyFailed(ctx context.Context, ev gocardless.Event) error {
	unlock, err := s.locker.Lock(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("lock event %s: %w", ev.ID, err)
	}
	defer unlock.Unlock(ctx)

	flow, err := s.paymentRepo.GetFlowByPaymentID(ctx, ev.Links.Payment)
	if err != nil {
		if errors.Is(err, domain.ErrFlowNotFound) {
			s.logger.Warn("webhook for unknown payment",
				logger.String("event_id", ev.ID),
				logger.String("payment_id", ev.Links.Payment),
			)
			return nil
		}
		return fmt.Errorf("look up flow: %w", err)
	}

	applied, err := s.paymentRepo.FailPayment(ctx, ev.ID, ev.Action, flow.ID)
	if err != nil {
		return fmt.Errorf("record failed payment: %w", err)
	}
	if !applied {
		return nil
	}

	reason := ev.Details.Description
	if reason == "" {
		reason = ev.Details.Cause
	}

	s.logger.Info("payment failed",
		logger.String("event_id", ev.ID),
		logger.String("member_id", flow.MemberID),
		logger.String("reason", reason),
	)

	go s.notifier.NotifyPaymentFailed(context.WithoutCancel(ctx), flow.MemberID, reason)

	return nil
}

func (s *PaymentService) successURL(sessionToken string) string {
	return fmt.Sprintf("%s/gc/success?session_token=%s", s.publicBaseURL, url.QueryEscape(sessionToken))
}
