package repository

import (
	"focal/internal/models"

	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(m *models.Media) error {
	return r.db.Create(m).Error
}

func (r *MediaRepository) GetByID(id uint) (*models.Media, error) {
	var m models.Media
	err := r.db.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Media{}, id).Error
}

func (r *MediaRepository) ListPortfolio(photographerID uint, limit, offset int) ([]models.Media, error) {
	var list []models.Media
	err := r.db.Where("photographer_id = ? AND is_portfolio = ?", photographerID, true).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *MediaRepository) ListByBookingID(bookingID uint) ([]models.Media, error) {
	var list []models.Media
	err := r.db.Where("booking_id = ?", bookingID).Order("created_at ASC").Find(&list).Error
	return list, err
}
