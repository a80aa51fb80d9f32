package repository

import (
	"focal/internal/models"

	"gorm.io/gorm"
)

type RefundRepository struct {
	db *gorm.DB
}

func NewRefundRepository(db *gorm.DB) *RefundRepository {
	return &RefundRepository{db: db}
}

func (r *RefundRepository) Create(rf *models.Refund) error {
	return r.db.Create(rf).Error
}

func (r *RefundRepository) GetByID(id uint) (*models.Refund, error) {
	var rf models.Refund
	err := r.db.First(&rf, id).Error
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

func (r *RefundRepository) GetByBookingID(bookingID uint) (*models.Refund, error) {
	var rf models.Refund
	err := r.db.Where("booking_id = ?", bookingID).First(&rf).Error
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

func (r *RefundRepository) Update(rf *models.Refund) error {
	return r.db.Save(rf).Error
}

func (r *RefundRepository) ListByStatus(status string, limit, offset int) ([]models.Refund, error) {
	var list []models.Refund
	err := r.db.Where("status = ?", status).
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
