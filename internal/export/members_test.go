package export

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberExporter_Members_Paginates(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepo(t)
	e := NewMemberExporter(memberRepo)

	firstPage := make([]*domain.Member, pageSize)
	for i := range firstPage {
		firstPage[i] = &domain.Member{ID: "m"}
	}
	secondPage := []*domain.Member{{ID: "last"}}

	memberRepo.EXPECT().ListRange(mock.Anything, 0, pageSize).Return(firstPage, nil)
	memberRepo.EXPECT().ListRange(mock.Anything, pageSize, pageSize).Return(secondPage, nil)

	members, err := e.Members(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, members, pageSize+1)
}

func TestMemberExporter_Members_Limit(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepo(t)
	e := NewMemberExporter(memberRepo)

	page := []*domain.Member{{ID: "m1"}, {ID: "m2"}}
	memberRepo.EXPECT().ListRange(mock.Anything, 0, 2).Return(page, nil)

	members, err := e.Members(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestMembersCSV_SemicolonSeparated(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	members := []*domain.Member{
		{
			ID:        "m1",
			FullName:  "Alice Martin",
			FirstName: "Alice",
			LastName:  "Martin",
			Email:     "alice@example.fr",
			Credits:   4,
			IsActive:  true,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	data, err := MembersCSV(members)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id;full_name;first_name;last_name;email;phone;credits;is_active;created_at;updated_at", lines[0])
	assert.Contains(t, lines[1], "m1;Alice Martin;Alice;Martin;alice@example.fr;;4;true;")
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 15, 0, time.UTC)
	assert.Equal(t, "members-2025-03-10-09-30-15.csv", Filename(now))
}
