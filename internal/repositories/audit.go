package repositories

import (
	"context"
	"fmt"

	"qris/internal/models"

	"gorm.io/gorm"
)

// AuditRepository appends invoice lifecycle events to the database.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, event *models.InvoiceEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to record %s event: %w", event.Type, err)
	}
	return nil
}
