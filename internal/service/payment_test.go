package service

import (
	"context"
	"testing"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/gocardless"
	"github.com/copdrey/resilience-backend/internal/service/ports"
	"github.com/copdrey/resilience-backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentMocks struct {
	paymentRepo *mocks.MockPaymentRepo
	productRepo *mocks.MockProductRepo
	memberRepo  *mocks.MockMemberRepo
	gateway     *mocks.MockPaymentGateway
	locker      *mocks.MockEventLocker
	notifier    *mocks.MockStudioNotifier
}

func newPaymentService(t *testing.T) (paymentMocks, *PaymentService) {
	t.Helper()
	m := paymentMocks{
		paymentRepo: mocks.NewMockPaymentRepo(t),
		productRepo: mocks.NewMockProductRepo(t),
		memberRepo:  mocks.NewMockMemberRepo(t),
		gateway:     mocks.NewMockPaymentGateway(t),
		locker:      mocks.NewMockEventLocker(t),
		notifier:    mocks.NewMockStudioNotifier(t),
	}
	svc := NewPaymentService(
		m.paymentRepo, m.productRepo, m.memberRepo, m.gateway, m.locker, m.notifier,
		newTestLogger(t),
		"https://api.studio.example", "resilience",
	)
	return m, svc
}

func (m paymentMocks) expectLock(t *testing.T, eventID string) {
	t.Helper()
	unlocker := mocks.NewMockUnlocker(t)
	unlocker.EXPECT().Unlock(mock.Anything).Return(nil)
	m.locker.EXPECT().Lock(mock.Anything, eventID).Return(unlocker, nil)
}

func TestPaymentService_CreateRedirectFlow_Success(t *testing.T) {
	m, svc := newPaymentService(t)

	product := &domain.CreditProduct{ID: "p1", Name: "Pack 10", Credits: 10, PriceCents: 9000, Active: true}
	member := &domain.Member{ID: "m1", Email: "alice@example.fr"}

	m.productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(member, nil)
	m.gateway.EXPECT().CreateRedirectFlow(mock.Anything, mock.Anything).Run(func(ctx context.Context, params ports.RedirectFlowParams) {
		assert.Equal(t, "sess-1", params.SessionToken)
		assert.Equal(t, "alice@example.fr", params.PrefilledEmail)
		assert.Contains(t, params.SuccessRedirectURL, "https://api.studio.example/gc/success")
	}).Return(&ports.RedirectFlow{ID: "RE123", RedirectURL: "https://pay.gocardless.com/flow/RE123"}, nil)
	m.paymentRepo.EXPECT().CreateFlow(mock.Anything, mock.Anything).Run(func(ctx context.Context, flow *domain.PaymentFlow) {
		assert.Equal(t, "RE123", flow.ID)
		assert.Equal(t, "m1", flow.MemberID)
		assert.Equal(t, "p1", flow.ProductID)
	}).Return(nil)

	redirectURL, err := svc.CreateRedirectFlow(context.Background(), domain.CreateFlowInput{
		SessionToken: "sess-1",
		MemberID:     "m1",
		ProductID:    "p1",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.gocardless.com/flow/RE123", redirectURL)
}

func TestPaymentService_CreateRedirectFlow_InactiveProduct(t *testing.T) {
	m, svc := newPaymentService(t)

	product := &domain.CreditProduct{ID: "p1", Active: false}
	m.productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)

	_, err := svc.CreateRedirectFlow(context.Background(), domain.CreateFlowInput{
		SessionToken: "sess-1",
		MemberID:     "m1",
		ProductID:    "p1",
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPaymentService_CreateRedirectFlow_UnknownMemberStillWorks(t *testing.T) {
	m, svc := newPaymentService(t)

	product := &domain.CreditProduct{ID: "p1", Name: "Pack 10", Credits: 10, PriceCents: 9000, Active: true}

	m.productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m-unsynced").Return(nil, domain.ErrMemberNotFound)
	m.gateway.EXPECT().CreateRedirectFlow(mock.Anything, mock.Anything).Run(func(ctx context.Context, params ports.RedirectFlowParams) {
		assert.Empty(t, params.PrefilledEmail)
	}).Return(&ports.RedirectFlow{ID: "RE124", RedirectURL: "https://pay.gocardless.com/flow/RE124"}, nil)
	m.paymentRepo.EXPECT().CreateFlow(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateRedirectFlow(context.Background(), domain.CreateFlowInput{
		SessionToken: "sess-1",
		MemberID:     "m-unsynced",
		ProductID:    "p1",
	})

	require.NoError(t, err)
}

func TestPaymentService_CreateRedirectFlow_Validation(t *testing.T) {
	_, svc := newPaymentService(t)

	_, err := svc.CreateRedirectFlow(context.Background(), domain.CreateFlowInput{MemberID: "m1", ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_CompleteRedirectFlow_Success(t *testing.T) {
	m, svc := newPaymentService(t)

	flow := &domain.PaymentFlow{ID: "RE123", SessionToken: "sess-1", MemberID: "m1", ProductID: "p1"}
	product := &domain.CreditProduct{ID: "p1", Name: "Pack 10", Credits: 10, PriceCents: 9000, Active: true}

	m.paymentRepo.EXPECT().GetFlowBySessionToken(mock.Anything, "sess-1").Return(flow, nil)
	m.gateway.EXPECT().CompleteRedirectFlow(mock.Anything, "RE123", "sess-1").Return(&ports.CompletedFlow{MandateID: "MD001"}, nil)
	m.productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	m.gateway.EXPECT().CreatePayment(mock.Anything, mock.Anything).Run(func(ctx context.Context, params ports.PaymentParams) {
		assert.Equal(t, "MD001", params.MandateID)
		assert.Equal(t, 9000, params.AmountCents)
		assert.Equal(t, "EUR", params.Currency)
		assert.Equal(t, "RE123", params.IdempotencyKey) // replays cannot double-charge
	}).Return("PM001", nil)
	m.paymentRepo.EXPECT().MarkCompleted(mock.Anything, "RE123", "MD001", "PM001").Return(nil)

	deepLink, err := svc.CompleteRedirectFlow(context.Background(), "RE123", "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "resilience://gc/success?mandate=MD001&credits=10", deepLink)
}

func TestPaymentService_CompleteRedirectFlow_FlowMismatch(t *testing.T) {
	m, svc := newPaymentService(t)

	flow := &domain.PaymentFlow{ID: "RE123", SessionToken: "sess-1"}
	m.paymentRepo.EXPECT().GetFlowBySessionToken(mock.Anything, "sess-1").Return(flow, nil)

	_, err := svc.CompleteRedirectFlow(context.Background(), "RE999", "sess-1")

	assert.ErrorIs(t, err, domain.ErrFlowNotFound)
}

func webhookEvent(id, action, paymentID string) gocardless.Event {
	ev := gocardless.Event{ID: id, Action: action, ResourceType: "payments"}
	ev.Links.Payment = paymentID
	return ev
}

func TestPaymentService_HandleWebhook_ConfirmedGrantsCredits(t *testing.T) {
	m, svc := newPaymentService(t)

	flow := &domain.PaymentFlow{ID: "RE123", MemberID: "m1", ProductID: "p1", PaymentID: "PM001"}
	product := &domain.CreditProduct{ID: "p1", Name: "Pack 10", Credits: 10, PriceCents: 9000, Active: true}

	m.expectLock(t, "EV001")
	m.paymentRepo.EXPECT().GetFlowByPaymentID(mock.Anything, "PM001").Return(flow, nil)
	m.productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	m.paymentRepo.EXPECT().ConfirmPayment(mock.Anything, "EV001", "confirmed", "RE123", mock.Anything).Run(
		func(ctx context.Context, eventID, action, flowID string, entry *domain.LedgerEntry) {
			assert.Equal(t, "m1", entry.MemberID)
			assert.Equal(t, 10, entry.Delta)
			assert.Equal(t, domain.SourcePurchase, entry.Source)
			require.NotNil(t, entry.ProductID)
			assert.Equal(t, "p1", *entry.ProductID)
		},
	).Return(true, nil)
	m.notifier.EXPECT().NotifyPaymentConfirmed(mock.Anything, "m1", 10).Return()

	err := svc.HandleWebhook(context.Background(), []gocardless.Event{
		webhookEvent("EV001", "confirmed", "PM001"),
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_HandleWebhook_RedeliveredEventGrantsOnce(t *testing.T) {
	m, svc := newPaymentService(t)

	flow := &domain.PaymentFlow{ID: "RE123", MemberID: "m1", ProductID: "p1", PaymentID: "PM001"}
	product := &domain.CreditProduct{ID: "p1", Name: "Pack 10", Credits: 10, PriceCents: 9000, Active: true}

	unlocker := mocks.NewMockUnlocker(t)
	unlocker.EXPECT().Unlock(mock.Anything).Return(nil).Times(2)
	m.locker.EXPECT().Lock(mock.Anything, "EV001").Return(unlocker, nil).Times(2)
	m.paymentRepo.EXPECT().GetFlowByPaymentID(mock.Anything, "PM001").Return(flow, nil).Times(2)
	m.productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil).Times(2)
	m.paymentRepo.EXPECT().ConfirmPayment(mock.Anything, "EV001", "confirmed", "RE123", mock.Anything).Return(true, nil).Once()
	m.paymentRepo.EXPECT().ConfirmPayment(mock.Anything, "EV001", "confirmed", "RE123", mock.Anything).Return(false, nil).Once()
	m.notifier.EXPECT().NotifyPaymentConfirmed(mock.Anything, "m1", 10).Return().Once()

	ev := webhookEvent("EV001", "confirmed", "PM001")

	require.NoError(t, svc.HandleWebhook(context.Background(), []gocardless.Event{ev}))
	require.NoError(t, svc.HandleWebhook(context.Background(), []gocardless.Event{ev}))

	time.Sleep(50 * time.Millisecond)
}

func TestPaymentService_HandleWebhook_UnknownPaymentAcknowledged(t *testing.T) {
	m, svc := newPaymentService(t)

	m.expectLock(t, "EV002")
	m.paymentRepo.EXPECT().GetFlowByPaymentID(mock.Anything, "PM-foreign").Return(nil, domain.ErrFlowNotFound)

	err := svc.HandleWebhook(context.Background(), []gocardless.Event{
		webhookEvent("EV002", "confirmed", "PM-foreign"),
	})

	require.NoError(t, err)
}

func TestPaymentService_HandleWebhook_FailedMarksFlow(t *testing.T) {
	m, svc := newPaymentService(t)

	flow := &domain.PaymentFlow{ID: "RE123", MemberID: "m1", ProductID: "p1", PaymentID: "PM001"}

	m.expectLock(t, "EV003")
	m.paymentRepo.EXPECT().GetFlowByPaymentID(mock.Anything, "PM001").Return(flow, nil)
	m.paymentRepo.EXPECT().FailPayment(mock.Anything, "EV003", "failed", "RE123").Return(true, nil)
	m.notifier.EXPECT().NotifyPaymentFailed(mock.Anything, "m1", mock.Anything).Return()

	err := svc.HandleWebhook(context.Background(), []gocardless.Event{
		webhookEvent("EV003", "failed", "PM001"),
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestPaymentService_HandleWebhook_IgnoresOtherResources(t *testing.T) {
	_, svc := newPaymentService(t)

	ev := gocardless.Event{ID: "EV004", Action: "created", ResourceType: "mandates"}

	require.NoError(t, svc.HandleWebhook(context.Background(), []gocardless.Event{ev}))
}

func TestPaymentService_HandleWebhook_ErrorAbortsBatch(t *testing.T) {
	m, svc := newPaymentService(t)

	flow := &domain.PaymentFlow{ID: "RE123", MemberID: "m1", ProductID: "p1", PaymentID: "PM001"}
	product := &domain.CreditProduct{ID: "p1", Credits: 10, Active: true}

	m.expectLock(t, "EV005")
	m.paymentRepo.EXPECT().GetFlowByPaymentID(mock.Anything, "PM001").Return(flow, nil)
	m.productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	m.paymentRepo.EXPECT().ConfirmPayment(mock.Anything, "EV005", "confirmed", "RE123", mock.Anything).
		Return(false, assert.AnError)

	err := svc.HandleWebhook(context.Background(), []gocardless.Event{
		webhookEvent("EV005", "confirmed", "PM001"),
		webhookEvent("EV006", "confirmed", "PM002"), // never reached
	})

	require.Error(t, err)
}
