package invoice

import (
	"context"

	domainInvoice "qris/internal/domain/invoice"
	"qris/internal/models"
)

// Store is the invoice registry the service works against.
type Store interface {
	Reserve(transactionNumber string, amount int64) (*domainInvoice.Invoice, error)
	FindByID(id string) (*domainInvoice.Invoice, error)
	FindByToken(token string) (*domainInvoice.Invoice, error)
	Exists(transactionNumber string) bool
	Count() int
}

// AuditRecorder receives lifecycle events. Failures are logged, never returned
// to the caller.
type AuditRecorder interface {
	Record(ctx context.Context, event *models.InvoiceEvent) error
}

// Service defines the invoice operations exposed to the HTTP layer.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error)
	Pay(ctx context.Context, req PayRequest) (*PayResult, error)

	MerchantID() string
	InvoiceCount() int
}
