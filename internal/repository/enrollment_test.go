package repository

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentRepository_Enroll_LocksMemberWithoutMembersRow(t *testing.T) {
	conn := newStubConn()
	conn.rows["FROM courses"] = [][]driver.Value{{int64(3)}}
	conn.rows["SELECT EXISTS"] = [][]driver.Value{{false}}
	conn.rows["COUNT(*) FROM enrollments"] = [][]driver.Value{{int64(0)}}
	conn.rows["SUM(delta)"] = [][]driver.Value{{int64(1)}}

	// The member exists only in the ledger (granted credits before the auth
	// sync created a members row). The balance check must still serialize.
	repo := NewEnrollmentRepo(newStubDB(conn))
	err := repo.Enroll(context.Background(), "c1", "ledger-only-member", true)

	require.NoError(t, err)

	lockIdx := conn.indexOf("pg_advisory_xact_lock")
	sumIdx := conn.indexOf("SUM(delta)")
	require.NotEqual(t, -1, lockIdx, "member advisory lock was never taken")
	require.NotEqual(t, -1, sumIdx)
	assert.Less(t, lockIdx, sumIdx, "balance read before the member lock")

	assert.Equal(t, 1, conn.countOf("INSERT INTO enrollments"))
	assert.Equal(t, 1, conn.countOf("INSERT INTO credits_ledger"))
	assert.Equal(t, 1, conn.commits)
}

func TestEnrollmentRepository_Enroll_InsufficientCreditsRollsBack(t *testing.T) {
	conn := newStubConn()
	conn.rows["FROM courses"] = [][]driver.Value{{int64(3)}}
	conn.rows["SELECT EXISTS"] = [][]driver.Value{{false}}
	conn.rows["COUNT(*) FROM enrollments"] = [][]driver.Value{{int64(0)}}
	conn.rows["SUM(delta)"] = [][]driver.Value{{int64(0)}}

	repo := NewEnrollmentRepo(newStubDB(conn))
	err := repo.Enroll(context.Background(), "c1", "m1", true)

	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
	assert.Equal(t, 0, conn.countOf("INSERT INTO enrollments"))
	assert.Equal(t, 0, conn.commits)
	assert.Equal(t, 1, conn.rollbacks)
}

func TestEnrollmentRepository_Enroll_WaivedCreditsSkipBalanceCheck(t *testing.T) {
	conn := newStubConn()
	conn.rows["FROM courses"] = [][]driver.Value{{int64(3)}}
	conn.rows["SELECT EXISTS"] = [][]driver.Value{{false}}
	conn.rows["COUNT(*) FROM enrollments"] = [][]driver.Value{{int64(0)}}

	repo := NewEnrollmentRepo(newStubDB(conn))
	err := repo.Enroll(context.Background(), "c1", "m1", false)

	require.NoError(t, err)
	assert.Equal(t, 0, conn.countOf("pg_advisory_xact_lock"))
	assert.Equal(t, 0, conn.countOf("SUM(delta)"))
	assert.Equal(t, 0, conn.countOf("INSERT INTO credits_ledger"))
	assert.Equal(t, 1, conn.countOf("INSERT INTO enrollments"))
	assert.Equal(t, 1, conn.commits)
}
