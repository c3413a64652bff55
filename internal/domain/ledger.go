package domain

import "time"

// LedgerSource classifies a credit adjustment.
type LedgerSource string

const (
	SourcePurchase  LedgerSource = "purchase"
	SourceAdmin     LedgerSource = "admin"
	SourceBooking   LedgerSource = "booking"
	SourceUnbooking LedgerSource = "unbooking"
)

func (s LedgerSource) Valid() bool {
	switch s {
	case SourcePurchase, SourceAdmin, SourceBooking, SourceUnbooking:
		return true
	}
	return false
}

// LedgerEntry is an immutable signed credit adjustment. The ledger is
// append-only: a member's balance is the sum of deltas, never a stored
// counter.
type LedgerEntry struct {
	ID        int64        `json:"id"`
	MemberID  string       `json:"member_id"`
	Delta     int          `json:"delta"`
	Source    LedgerSource `json:"source"`
	Note      string       `json:"note"`
	ProductID *string      `json:"product_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
