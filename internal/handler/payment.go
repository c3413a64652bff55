package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/gocardless"
	"github.com/copdrey/resilience-backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// maxWebhookBody bounds the raw payload read; GoCardless batches stay well
// under this.
const maxWebhookBody = 1 << 20

func (h *Handler) CreateRedirectFlow(c *ginext.Context) {
	var req dto.RedirectFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	redirectURL, err := h.paymentService.CreateRedirectFlow(c.Request.Context(), domain.CreateFlowInput{
		SessionToken: req.SessionToken,
		MemberID:     req.MemberID,
		ProductID:    req.ProductID,
		Description:  req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RedirectFlowResponse{RedirectURL: redirectURL})
}

// PaymentSuccess is where GoCardless sends the payer's browser after mandate
// setup. It completes the flow, charges the payment, and bounces the browser
// into the mobile app via deep link.
func (h *Handler) PaymentSuccess(c *ginext.Context) {
	flowID := c.Query("redirect_flow_id")
	sessionToken := c.Query("session_token")

	deepLink, err := h.paymentService.CompleteRedirectFlow(c.Request.Context(), flowID, sessionToken)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, deepLink)
}

// Webhook verifies and applies a GoCardless event batch. Signature failures
// get 401; processing failures get 500 so GoCardless redelivers the batch.
func (h *Handler) Webhook(c *ginext.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "read body"})
		return
	}

	events, err := gocardless.ParseWebhook(body, c.GetHeader("Webhook-Signature"), h.webhookSecret)
	if err != nil {
		if errors.Is(err, gocardless.ErrInvalidSignature) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err = h.paymentService.HandleWebhook(c.Request.Context(), events); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "webhook processing failed"})
		return
	}

	c.Status(http.StatusNoContent)
}
