package models

import (
	"time"

	"qris/internal/domain/invoice"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EventInvoiceCreated = "invoice.created"
	EventInvoicePaid    = "invoice.paid"
)

// InvoiceEvent is one row of the append-only audit trail. It is written for
// bookkeeping only; invoices are never rebuilt from it.
type InvoiceEvent struct {
	gorm.Model
	EventID           string    `gorm:"uniqueIndex;not null"`
	Type              string    `gorm:"not null;index"`
	InvoiceID         string    `gorm:"not null;index"`
	TransactionNumber string    `gorm:"not null;index"`
	Amount            int64     `gorm:"not null"`
	CustomerName      string
	PaymentMethod     string
	OccurredAt        time.Time `gorm:"not null"`
}

// NewInvoiceEvent captures d as an event of the given type.
func NewInvoiceEvent(eventType string, d invoice.Details, at time.Time) *InvoiceEvent {
	return &InvoiceEvent{
		EventID:           uuid.NewString(),
		Type:              eventType,
		InvoiceID:         d.ID,
		TransactionNumber: d.TransactionNumber,
		Amount:            d.Amount,
		CustomerName:      d.CustomerName,
		PaymentMethod:     d.PaymentMethod,
		OccurredAt:        at,
	}
}
