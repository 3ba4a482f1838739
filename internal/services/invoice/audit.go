package invoice

import (
	"context"

	"qris/internal/models"
)

// NoopAuditRecorder drops every event.
type NoopAuditRecorder struct{}

func (NoopAuditRecorder) Record(context.Context, *models.InvoiceEvent) error { return nil }
