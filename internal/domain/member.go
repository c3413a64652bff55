package domain

import (
	"strings"
	"time"
)

// Member is owned by the external auth system; this service only references
// member ids. The Credits column is a denormalized projection of the ledger
// and is never authoritative (see reconciler).
type Member struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Credits   int       `json:"credits"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName resolves the name shown on rosters: stored full name first,
// then first+last, then the raw member id.
func DisplayName(fullName, firstName, lastName, memberID string) string {
	if fullName != "" {
		return fullName
	}
	if name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName)); name != "" {
		return name
	}
	return memberID
}

// CreditDrift reports a member whose cached credits column diverged from the
// ledger sum before reconciliation.
type CreditDrift struct {
	MemberID string
	Cached   int
	Actual   int
}
