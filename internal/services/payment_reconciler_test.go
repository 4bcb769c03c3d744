package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sullivan-trading/sullivan-api/internal/apperrors"
	"github.com/sullivan-trading/sullivan-api/internal/client/payments"
	"github.com/sullivan-trading/sullivan-api/internal/mocks"
	"github.com/sullivan-trading/sullivan-api/internal/services"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHandleEventRejectsBadSignature(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	verifier := payments.VerifyFunc(func([]byte, string) (payments.WebhookEvent, error) {
		return payments.WebhookEvent{}, apperrors.NewAuthentication("signature mismatch", nil)
	})
	r := services.NewPaymentReconciler(verifier, st, zap.NewNop())

	// The store mock has no expectations: an unverified delivery must
	// not reach it.
	err := r.HandleEvent(context.Background(), []byte(`{}`), "t=1,v1=bad")
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestHandleEventMissingSecret(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	verifier := payments.VerifyFunc(func([]byte, string) (payments.WebhookEvent, error) {
		return payments.WebhookEvent{}, apperrors.NewConfiguration("webhook secret not configured")
	})
	r := services.NewPaymentReconciler(verifier, st, zap.NewNop())

	err := r.HandleEvent(context.Background(), []byte(`{}`), "t=1,v1=sig")
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestHandleEventIgnoresOtherEventTypes(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	verifier := payments.VerifyFunc(func([]byte, string) (payments.WebhookEvent, error) {
		return payments.WebhookEvent{EventType: "invoice.finalized"}, nil
	})
	r := services.NewPaymentReconciler(verifier, st, zap.NewNop())

	err := r.HandleEvent(context.Background(), []byte(`{}`), "t=1,v1=sig")
	assert.NoError(t, err, "unhandled events must still ack")
}

func TestHandleEventIgnoresCheckoutWithoutLink(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	verifier := payments.VerifyFunc(func([]byte, string) (payments.WebhookEvent, error) {
		return payments.WebhookEvent{
			EventType: payments.EventCheckoutCompleted,
			Checkout:  &payments.CheckoutSession{ID: "cs_1"},
		}, nil
	})
	r := services.NewPaymentReconciler(verifier, st, zap.NewNop())

	err := r.HandleEvent(context.Background(), []byte(`{}`), "t=1,v1=sig")
	assert.NoError(t, err)
}

func TestHandleEventMarksInvoicePaid(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	verifier := payments.VerifyFunc(func([]byte, string) (payments.WebhookEvent, error) {
		return payments.WebhookEvent{
			EventType: payments.EventCheckoutCompleted,
			Checkout:  &payments.CheckoutSession{ID: "cs_1", PaymentLinkID: "plink_1"},
		}, nil
	})
	r := services.NewPaymentReconciler(verifier, st, zap.NewNop())

	st.EXPECT().
		MarkInvoicePaidByPaymentLink(gomock.Any(), "plink_1", "cs_1").
		Return(int64(1), nil)

	err := r.HandleEvent(context.Background(), []byte(`{}`), "t=1,v1=sig")
	assert.NoError(t, err)
}

func TestHandleEventDuplicateDeliveryAcks(t *testing.T) {
	st := mocks.NewMockStoreForTest(t)
	verifier := payments.VerifyFunc(func([]byte, string) (payments.WebhookEvent, error) {
		return payments.WebhookEvent{
			EventType: payments.EventCheckoutCompleted,
			Checkout:  &payments.CheckoutSession{ID: "cs_1", PaymentLinkID: "plink_1"},
		}, nil
	})
	r := services.NewPaymentReconciler(verifier, st, zap.NewNop())

	// Already paid: the guarded update matches no rows.
	st.EXPECT().
		MarkInvoicePaidByPaymentLink(gomock.Any(), "plink_1", "cs_1").
		Return(int64(0), nil)

	err := r.HandleEvent(context.Background(), []byte(`{}`), "t=1,v1=sig")
	assert.NoError(t, err, "duplicate deliveries are acked, not errored")
}
