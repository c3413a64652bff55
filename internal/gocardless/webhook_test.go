package gocardless

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestParseWebhook_ValidSignature(t *testing.T) {
	body := []byte(`{"events":[{"id":"EV1","action":"confirmed","resource_type":"payments","links":{"payment":"PM1"},"details":{"cause":"payment_confirmed"}}]}`)

	events, err := ParseWebhook(body, sign(body, "secret"), "secret")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "EV1", events[0].ID)
	assert.Equal(t, "confirmed", events[0].Action)
	assert.Equal(t, "PM1", events[0].Links.Payment)
	assert.Equal(t, "payment_confirmed", events[0].Details.Cause)
}

func TestParseWebhook_InvalidSignature(t *testing.T) {
	body := []byte(`{"events":[]}`)

	_, err := ParseWebhook(body, sign(body, "other-secret"), "secret")

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseWebhook_TamperedBody(t *testing.T) {
	body := []byte(`{"events":[{"id":"EV1"}]}`)
	signature := sign(body, "secret")

	tampered := []byte(`{"events":[{"id":"EV2"}]}`)
	_, err := ParseWebhook(tampered, signature, "secret")

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseWebhook_MalformedPayload(t *testing.T) {
	body := []byte(`not json`)

	_, err := ParseWebhook(body, sign(body, "secret"), "secret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSignature)
}
