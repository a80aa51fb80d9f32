package repository

import (
	"focal/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(rv *models.Review) error {
	return r.db.Create(rv).Error
}

func (r *ReviewRepository) GetByID(id uint) (*models.Review, error) {
	var rv models.Review
	err := r.db.First(&rv, id).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) GetByBookingID(bookingID uint) (*models.Review, error) {
	var rv models.Review
	err := r.db.Where("booking_id = ?", bookingID).First(&rv).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) Update(rv *models.Review) error {
	return r.db.Save(rv).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// VisibleRatings returns the full set of visible ratings for one
// photographer, for aggregate recomputation.
func (r *ReviewRepository) VisibleRatings(photographerID uint) ([]int, error) {
	var ratings []int
	err := r.db.Model(&models.Review{}).
		Where("photographer_id = ? AND is_visible = ?", photographerID, true).
		Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *ReviewRepository) ListByPhotographerID(photographerID uint, visibleOnly bool, limit, offset int) ([]models.Review, error) {
	var list []models.Review
	q := r.db.Where("photographer_id = ?", photographerID).
		Order("created_at DESC").Limit(limit).Offset(offset)
	if visibleOnly {
		q = q.Where("is_visible = ?", true)
	}
	err := q.Find(&list).Error
	return list, err
}
