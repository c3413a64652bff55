package gocardless

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateRedirectFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/redirect_flows", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "2015-07-06", r.Header.Get("GoCardless-Version"))

		var req map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sess-1", req["redirect_flows"]["session_token"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"redirect_flows":{"id":"RE1","redirect_url":"https://pay.gocardless.com/flow/RE1"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token-1")

	flow, err := c.CreateRedirectFlow(context.Background(), ports.RedirectFlowParams{
		SessionToken:       "sess-1",
		Description:        "Mandat SEPA",
		SuccessRedirectURL: "https://api.studio.example/gc/success",
	})

	require.NoError(t, err)
	assert.Equal(t, "RE1", flow.ID)
	assert.Equal(t, "https://pay.gocardless.com/flow/RE1", flow.RedirectURL)
}

func TestClient_CompleteRedirectFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/redirect_flows/RE1/actions/complete", r.URL.Path)

		w.Write([]byte(`{"redirect_flows":{"id":"RE1","links":{"mandate":"MD1","customer":"CU1"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token-1")

	completed, err := c.CompleteRedirectFlow(context.Background(), "RE1", "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "MD1", completed.MandateID)
	assert.Equal(t, "CU1", completed.CustomerID)
}

func TestClient_CreatePayment_SendsIdempotencyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "RE1", r.Header.Get("Idempotency-Key"))

		var req map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(9000), req["payments"]["amount"])
		assert.Equal(t, "EUR", req["payments"]["currency"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"payments":{"id":"PM1","status":"pending_submission"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token-1")

	paymentID, err := c.CreatePayment(context.Background(), ports.PaymentParams{
		MandateID:      "MD1",
		AmountCents:    9000,
		Currency:       "EUR",
		IdempotencyKey: "RE1",
	})

	require.NoError(t, err)
	assert.Equal(t, "PM1", paymentID)
}

func TestClient_UpstreamErrorWrapsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"mandate not active"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token-1")

	_, err := c.CreatePayment(context.Background(), ports.PaymentParams{MandateID: "MD1", AmountCents: 100, Currency: "EUR"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentGateway)
}
