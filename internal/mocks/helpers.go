package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockStoreForTest creates a MockStore whose controller finishes with
// the test.
func NewMockStoreForTest(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStore(ctrl)
}

// NewMockLinkProviderForTest creates a MockLinkProvider whose controller
// finishes with the test.
func NewMockLinkProviderForTest(t *testing.T) *MockLinkProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLinkProvider(ctrl)
}

// NewMockInvoiceEmailSenderForTest creates a MockInvoiceEmailSender whose
// controller finishes with the test.
func NewMockInvoiceEmailSenderForTest(t *testing.T) *MockInvoiceEmailSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockInvoiceEmailSender(ctrl)
}
