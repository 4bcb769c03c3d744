package stripe_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments/stripe"
	"go.uber.org/zap"
)

const testSecret = "whsec_test_secret"

// signPayload builds a valid Stripe-Signature header for payload.
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhookMissingSecret(t *testing.T) {
	svc := stripe.New("sk_test_key", "", zap.NewNop())

	_, err := svc.VerifyWebhook([]byte(`{}`), "t=1,v1=sig")
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestVerifyWebhookBadSignature(t *testing.T) {
	svc := stripe.New("sk_test_key", testSecret, zap.NewNop())

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	_, err := svc.VerifyWebhook(payload, "t=1,v1=deadbeef")
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))

	// A signature computed with the wrong secret also fails.
	sig := signPayload(payload, "whsec_wrong", time.Now())
	_, err = svc.VerifyWebhook(payload, sig)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestVerifyWebhookMapsCheckoutCompleted(t *testing.T) {
	svc := stripe.New("sk_test_key", testSecret, zap.NewNop())

	payload := []byte(`{
		"id": "evt_1",
		"api_version": "2025-04-30.basil",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_1",
				"payment_link": {"id": "plink_1"}
			}
		}
	}`)
	sig := signPayload(payload, testSecret, time.Now())

	event, err := svc.VerifyWebhook(payload, sig)
	require.NoError(t, err)
	assert.Equal(t, payments.EventCheckoutCompleted, event.EventType)
	assert.Equal(t, "stripe", event.Provider)
	require.NotNil(t, event.Checkout)
	assert.Equal(t, "cs_test_1", event.Checkout.ID)
	assert.Equal(t, "plink_1", event.Checkout.PaymentLinkID)
}

func TestVerifyWebhookCheckoutWithoutPaymentLink(t *testing.T) {
	svc := stripe.New("sk_test_key", testSecret, zap.NewNop())

	payload := []byte(`{
		"id": "evt_2",
		"api_version": "2025-04-30.basil",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_2"}}
	}`)
	sig := signPayload(payload, testSecret, time.Now())

	event, err := svc.VerifyWebhook(payload, sig)
	require.NoError(t, err)
	require.NotNil(t, event.Checkout)
	assert.Empty(t, event.Checkout.PaymentLinkID)
}

func TestVerifyWebhookPassesThroughOtherEvents(t *testing.T) {
	svc := stripe.New("sk_test_key", testSecret, zap.NewNop())

	payload := []byte(`{"id":"evt_3","api_version":"2025-04-30.basil","type":"payment_intent.created","data":{"object":{}}}`)
	sig := signPayload(payload, testSecret, time.Now())

	event, err := svc.VerifyWebhook(payload, sig)
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.created", event.EventType)
	assert.Nil(t, event.Checkout)
}
