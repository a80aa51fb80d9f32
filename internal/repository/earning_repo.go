package repository

import (
	"focal/internal/models"

	"gorm.io/gorm"
)

type EarningRepository struct {
	db *gorm.DB
}

func NewEarningRepository(db *gorm.DB) *EarningRepository {
	return &EarningRepository{db: db}
}

func (r *EarningRepository) Create(e *models.Earning) error {
	return r.db.Create(e).Error
}

func (r *EarningRepository) GetByBookingID(bookingID uint) (*models.Earning, error) {
	var e models.Earning
	err := r.db.Where("booking_id = ?", bookingID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EarningRepository) ListByPhotographerID(photographerID uint, year int, limit, offset int) ([]models.Earning, error) {
	var list []models.Earning
	q := r.db.Where("photographer_id = ?", photographerID).
		Order("year DESC, month DESC").Limit(limit).Offset(offset)
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	err := q.Find(&list).Error
	return list, err
}

// EarningsSummary is one month's aggregated totals.
type EarningsSummary struct {
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Total    float64 `json:"total"`
	Earnings float64 `json:"earnings"`
	Bookings int     `json:"bookings"`
}

func (r *EarningRepository) Summary(photographerID uint, year int) ([]EarningsSummary, error) {
	var rows []EarningsSummary
	err := r.db.Model(&models.Earning{}).
		Select("month, year, SUM(total_amount) AS total, SUM(earnings) AS earnings, COUNT(*) AS bookings").
		Where("photographer_id = ? AND year = ?", photographerID, year).
		Group("year, month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}
