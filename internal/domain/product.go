package domain

import "time"

// CreditProduct is a purchasable credit bundle. Immutable once referenced by
// a payment, except for the active flag.
type CreditProduct struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Credits    int       `json:"credits"`
	PriceCents int       `json:"price_cents"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateProductInput struct {
	Name       string
	Credits    int
	PriceCents int
	Active     *bool
}
