package gocardless

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// Event is one entry of a GoCardless webhook payload. The event id doubles
// as our dedupe key against redelivery.
type Event struct {
	ID           string `json:"id"`
	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	Links        struct {
		Payment string `json:"payment"`
		Mandate string `json:"mandate"`
	} `json:"links"`
	Details struct {
		Cause       string `json:"cause"`
		Description string `json:"description"`
	} `json:"details"`
}

type webhookPayload struct {
	Events []Event `json:"events"`
}

// ParseWebhook verifies the Webhook-Signature header (hex HMAC-SHA256 of the
// raw body with the endpoint secret) and decodes the events. The raw body
// must be the exact bytes received; re-serialized JSON will not verify.
func ParseWebhook(body []byte, signature, secret string) ([]Event, error) {
	if !ValidSignature(body, signature, secret) {
		return nil, ErrInvalidSignature
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}

	return payload.Events, nil
}

func ValidSignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
