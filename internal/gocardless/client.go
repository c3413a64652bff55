package gocardless

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports"
)

// apiVersion is the GoCardless-Version header value the original backend
// pinned; responses change shape across versions.
const apiVersion = "2015-07-06"

const defaultTimeout = 15 * time.Second

// Client is a thin wrapper over the GoCardless REST API: create a redirect
// flow, complete it, create a payment against the resulting mandate. The
// flow/mandate/payment state machine lives entirely on their side.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func New(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

type redirectFlowRequest struct {
	RedirectFlows struct {
		Description        string             `json:"description"`
		SessionToken       string             `json:"session_token"`
		SuccessRedirectURL string             `json:"success_redirect_url"`
		PrefilledCustomer  *prefilledCustomer `json:"prefilled_customer,omitempty"`
	} `json:"redirect_flows"`
}

type prefilledCustomer struct {
	Email string `json:"email"`
}

type redirectFlowResponse struct {
	RedirectFlows struct {
		ID          string `json:"id"`
		RedirectURL string `json:"redirect_url"`
		Links       struct {
			Mandate  string `json:"mandate"`
			Customer string `json:"customer"`
		} `json:"links"`
	} `json:"redirect_flows"`
}

func (c *Client) CreateRedirectFlow(ctx context.Context, params ports.RedirectFlowParams) (*ports.RedirectFlow, error) {
	var req redirectFlowRequest
	req.RedirectFlows.Description = params.Description
	req.RedirectFlows.SessionToken = params.SessionToken
	req.RedirectFlows.SuccessRedirectURL = params.SuccessRedirectURL
	if params.PrefilledEmail != "" {
		req.RedirectFlows.PrefilledCustomer = &prefilledCustomer{Email: params.PrefilledEmail}
	}

	var resp redirectFlowResponse
	if err := c.do(ctx, http.MethodPost, "/redirect_flows", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.RedirectFlows.RedirectURL == "" {
		return nil, fmt.Errorf("%w: redirect_url missing in response", domain.ErrPaymentGateway)
	}

	return &ports.RedirectFlow{
		ID:          resp.RedirectFlows.ID,
		RedirectURL: resp.RedirectFlows.RedirectURL,
	}, nil
}

type completeFlowRequest struct {
	Data struct {
		SessionToken string `json:"session_token"`
	} `json:"data"`
}

func (c *Client) CompleteRedirectFlow(ctx context.Context, flowID, sessionToken string) (*ports.CompletedFlow, error) {
	var req completeFlowRequest
	req.Data.SessionToken = sessionToken

	path := fmt.Sprintf("/redirect_flows/%s/actions/complete", flowID)
	var resp redirectFlowResponse
	if err := c.do(ctx, http.MethodPost, path, "", req, &resp); err != nil {
		return nil, err
	}
	if resp.RedirectFlows.Links.Mandate == "" {
		return nil, fmt.Errorf("%w: mandate link missing in response", domain.ErrPaymentGateway)
	}

	return &ports.CompletedFlow{
		MandateID:  resp.RedirectFlows.Links.Mandate,
		CustomerID: resp.RedirectFlows.Links.Customer,
	}, nil
}

type paymentRequest struct {
	Payments struct {
		Amount      int               `json:"amount"`
		Currency    string            `json:"currency"`
		Description string            `json:"description,omitempty"`
		Metadata    map[string]string `json:"metadata,omitempty"`
		Links       struct {
			Mandate string `json:"mandate"`
		} `json:"links"`
	} `json:"payments"`
}

type paymentResponse struct {
	Payments struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"payments"`
}

func (c *Client) CreatePayment(ctx context.Context, params ports.PaymentParams) (string, error) {
	var req paymentRequest
	req.Payments.Amount = params.AmountCents
	req.Payments.Currency = params.Currency
	req.Payments.Description = params.Description
	req.Payments.Metadata = params.Metadata
	req.Payments.Links.Mandate = params.MandateID

	var resp paymentResponse
	if err := c.do(ctx, http.MethodPost, "/payments", params.IdempotencyKey, req, &resp); err != nil {
		return "", err
	}
	if resp.Payments.ID == "" {
		return "", fmt.Errorf("%w: payment id missing in response", domain.ErrPaymentGateway)
	}

	return resp.Payments.ID, nil
}

func (c *Client) do(ctx context.Context, method, path, idempotencyKey string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("GoCardless-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrPaymentGateway, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s %s: status %d: %s", domain.ErrPaymentGateway, method, path, resp.StatusCode, raw)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrPaymentGateway, err)
	}

	return nil
}
