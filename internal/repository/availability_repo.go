package repository

import (
	"time"

	"focal/internal/models"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(a *models.Availability) error {
	return r.db.Create(a).Error
}

func (r *AvailabilityRepository) GetByID(id uint) (*models.Availability, error) {
	var a models.Availability
	err := r.db.First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AvailabilityRepository) Update(a *models.Availability) error {
	return r.db.Save(a).Error
}

func (r *AvailabilityRepository) Delete(id uint) error {
	return r.db.Delete(&models.Availability{}, id).Error
}

func (r *AvailabilityRepository) ListByPhotographerID(photographerID uint) ([]models.Availability, error) {
	var list []models.Availability
	err := r.db.Where("photographer_id = ?", photographerID).
		Order("day_of_week ASC, start_time ASC").Find(&list).Error
	return list, err
}

func (r *AvailabilityRepository) CreateBlockedDate(b *models.BlockedDate) error {
	return r.db.Create(b).Error
}

func (r *AvailabilityRepository) DeleteBlockedDate(id uint) error {
	return r.db.Delete(&models.BlockedDate{}, id).Error
}

func (r *AvailabilityRepository) ListBlockedDates(photographerID uint, from time.Time) ([]models.BlockedDate, error) {
	var list []models.BlockedDate
	err := r.db.Where("photographer_id = ? AND date >= ?", photographerID, from).
		Order("date ASC").Find(&list).Error
	return list, err
}

// IsDateBlocked reports whether the photographer blocked the given day.
func (r *AvailabilityRepository) IsDateBlocked(photographerID uint, date time.Time) (bool, error) {
	var n int64
	err := r.db.Model(&models.BlockedDate{}).
		Where("photographer_id = ? AND DATE(date) = ?", photographerID, date.Format("2006-01-02")).
		Count(&n).Error
	return n > 0, err
}
