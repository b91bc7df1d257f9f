package payments

import (
	"context"
	"fmt"
)

// Gateway is the narrow interface the booking workflow uses to talk to a
// payment provider. providerURL is the provider's base URL (with trailing
// slash); amounts are integer minor currency units.
type Gateway interface {
	// CreateInvoice requests a new invoice for the given amount and returns
	// the provider-issued invoice id.
	CreateInvoice(ctx context.Context, providerURL string, amountMinor int64) (int64, error)

	// InvoiceStatus reports whether the provider considers the invoice paid.
	InvoiceStatus(ctx context.Context, providerURL string, invoiceID int64) (bool, error)
}

// ProviderError represents a non-200 response from a payment provider. The
// reason phrase is surfaced to the caller verbatim; provider calls are never
// retried.
type ProviderError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("Error: %s", e.Reason)
}
