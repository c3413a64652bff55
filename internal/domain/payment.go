package domain

import "time"

// FlowStatus tracks our view of a GoCardless redirect flow. The mandate and
// payment lifecycle itself is owned by GoCardless; these states only record
// what we have observed.
type FlowStatus string

const (
	FlowStatusPending   FlowStatus = "pending"
	FlowStatusCompleted FlowStatus = "completed"
	FlowStatusSettled   FlowStatus = "settled"
	FlowStatusFailed    FlowStatus = "failed"
)

// PaymentFlow correlates a GoCardless redirect flow with the member and
// product it was opened for. ID is the opaque flow id issued by GoCardless.
type PaymentFlow struct {
	ID           string     `json:"id"`
	SessionToken string     `json:"session_token"`
	MemberID     string     `json:"member_id"`
	ProductID    string     `json:"product_id"`
	Status       FlowStatus `json:"status"`
	MandateID    string     `json:"mandate_id,omitempty"`
	PaymentID    string     `json:"payment_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateFlowInput struct {
	SessionToken string
	MemberID     string
	ProductID    string
	Description  string
}

// PaymentEvent records a processed webhook event. Inserting the transaction
// id is the exactly-once gate against webhook redelivery.
type PaymentEvent struct {
	TransactionID string    `json:"transaction_id"`
	Action        string    `json:"action"`
	RecordedAt    time.Time `json:"recorded_at"`
}
