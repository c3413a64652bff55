package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_Append_WritesOnce(t *testing.T) {
	conn := newStubConn()

	repo := NewLedgerRepo(newStubDB(conn))
	err := repo.Append(context.Background(), &domain.LedgerEntry{
		MemberID: "m1",
		Delta:    5,
		Source:   domain.SourceAdmin,
		Note:     "manual adjustment",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, conn.countOf("INSERT INTO credits_ledger"))
}

func TestLedgerRepository_Append_FailureIsNotRetried(t *testing.T) {
	conn := newStubConn()
	conn.execErr["INSERT INTO credits_ledger"] = errors.New("connection reset")

	// An ambiguous write failure must surface to the caller: the statement
	// may have committed, and replaying it would apply the delta twice.
	repo := NewLedgerRepo(newStubDB(conn))
	err := repo.Append(context.Background(), &domain.LedgerEntry{
		MemberID: "m1",
		Delta:    5,
		Source:   domain.SourceAdmin,
		Note:     "manual adjustment",
	})

	require.Error(t, err)
	assert.Equal(t, 1, conn.countOf("INSERT INTO credits_ledger"))
}
