package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/reconciler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReconciler_Tick_CorrectsDrift(t *testing.T) {
	members := mocks.NewMockCreditReconciler(t)
	log := newTestLogger(t)

	r := New(members, 50*time.Millisecond, log)

	drifts := []domain.CreditDrift{
		{MemberID: "m1", Cached: 5, Actual: 3},
	}
	members.EXPECT().ReconcileCredits(mock.Anything).Return(drifts, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(members.Calls), 1)
}

func TestReconciler_Tick_HandlesError(t *testing.T) {
	members := mocks.NewMockCreditReconciler(t)
	log := newTestLogger(t)

	r := New(members, 50*time.Millisecond, log)

	members.EXPECT().ReconcileCredits(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(members.Calls), 1)
}

func TestReconciler_StopsOnContextCancel(t *testing.T) {
	members := mocks.NewMockCreditReconciler(t)
	log := newTestLogger(t)

	r := New(members, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop on context cancel")
	}
}

func TestReconciler_MultipleTicks(t *testing.T) {
	members := mocks.NewMockCreditReconciler(t)
	log := newTestLogger(t)

	r := New(members, 30*time.Millisecond, log)

	members.EXPECT().ReconcileCredits(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(members.Calls), 3)
}
