package repository

import (
	"time"

	"focal/internal/domain"
	"focal/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.Preload("Payment").First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Update(b *models.Booking) error {
	return r.db.Save(b).Error
}

func (r *BookingRepository) ListByClientID(clientID uint, limit, offset int) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *BookingRepository) ListByPhotographerID(photographerID uint, limit, offset int) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Where("photographer_id = ?", photographerID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *BookingRepository) ListByStatus(status string, limit, offset int) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Where("status = ?", status).
		Order("date ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// CountOverlapping counts non-terminal bookings for a photographer on a day
// whose time window intersects [startTime, endTime).
func (r *BookingRepository) CountOverlapping(photographerID uint, date time.Time, startTime, endTime string) (int64, error) {
	var n int64
	day := date.Format("2006-01-02")
	err := r.db.Model(&models.Booking{}).
		Where("photographer_id = ? AND DATE(date) = ?", photographerID, day).
		Where("status IN ?", []string{domain.BookingPending, domain.BookingConfirmed, domain.BookingInProgress}).
		Where("start_time < ? AND end_time > ?", endTime, startTime).
		Count(&n).Error
	return n, err
}
