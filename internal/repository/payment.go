package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AnasLabzar/server-paiment-service-fr/internal/model"
)

type PaymentRepository interface {
	// Create inserts one record. No upsert: two identical submissions
	// produce two rows.
	Create(ctx context.Context, record *model.PaymentRecord) error
	FindByEntryID(ctx context.Context, entryID string) ([]*model.PaymentRecord, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, record *model.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *paymentRepoImpl) FindByEntryID(ctx context.Context, entryID string) ([]*model.PaymentRecord, error) {
	var records []*model.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("entry_id = ?", entryID).
		Order("created_at").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
