package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"go.uber.org/zap"
)

// WebhookHandler receives payment processor webhook deliveries.
type WebhookHandler struct {
	reconciler *services.PaymentReconciler
	logger     *zap.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(reconciler *services.PaymentReconciler, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, logger: logger}
}

// HandleStripeWebhook handles POST /webhooks/stripe. The raw body must
// reach signature verification untouched, so it is read before any JSON
// binding. A bad signature is the caller's fault (400); a missing
// webhook secret is ours (500). Ignored event types still ack with 200
// so the processor stops retrying them.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	signature := c.GetHeader("Stripe-Signature")

	err = h.reconciler.HandleEvent(c.Request.Context(), payload, signature)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"received": true})
	case apperrors.IsConfiguration(err):
		sendError(c, http.StatusInternalServerError, "Webhook configuration error", err)
	case apperrors.IsAuthentication(err):
		sendError(c, http.StatusBadRequest, "Webhook signature verification failed", err)
	default:
		sendError(c, http.StatusInternalServerError, "Failed to process webhook", err)
	}
}
