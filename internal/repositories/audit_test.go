package repositories

import (
	"context"
	"testing"
	"time"

	"qris/internal/domain/invoice"
	"qris/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without touching a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=qris dbname=qris sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestAuditRepository_RecordBuildsInsert(t *testing.T) {
	db := dryRunDB(t)
	repo := NewAuditRepository(db)

	event := models.NewInvoiceEvent(models.EventInvoicePaid, invoice.Details{
		ID:                "123",
		TransactionNumber: "TX1",
		Amount:            15_000,
		CustomerName:      "Agus Azka",
		PaymentMethod:     "OVO",
	}, time.Now())

	stmt := db.Session(&gorm.Session{DryRun: true}).Create(event).Statement
	assert.Contains(t, stmt.SQL.String(), `INSERT INTO "invoice_events"`)

	require.NoError(t, repo.Record(context.Background(), event))
}

func TestNewInvoiceEvent(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	event := models.NewInvoiceEvent(models.EventInvoiceCreated, invoice.Details{ID: "7", TransactionNumber: "TX7", Amount: 10_000}, at)

	assert.Len(t, event.EventID, 36)
	assert.Equal(t, "invoice.created", event.Type)
	assert.Equal(t, "7", event.InvoiceID)
	assert.Equal(t, at, event.OccurredAt)
}
