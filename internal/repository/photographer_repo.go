package repository

import (
	"focal/internal/models"

	"gorm.io/gorm"
)

type PhotographerRepository struct {
	db *gorm.DB
}

func NewPhotographerRepository(db *gorm.DB) *PhotographerRepository {
	return &PhotographerRepository{db: db}
}

func (r *PhotographerRepository) Create(p *models.Photographer) error {
	return r.db.Create(p).Error
}

func (r *PhotographerRepository) GetByID(id uint) (*models.Photographer, error) {
	var p models.Photographer
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotographerRepository) GetByUserID(userID uint) (*models.Photographer, error) {
	var p models.Photographer
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotographerRepository) Update(p *models.Photographer) error {
	return r.db.Save(p).Error
}

// SetRating overwrites the two derived review fields; nothing else may write
// them.
func (r *PhotographerRepository) SetRating(photographerID uint, rating float64, totalReviews int) error {
	return r.db.Model(&models.Photographer{}).Where("id = ?", photographerID).
		Updates(map[string]interface{}{"rating": rating, "total_reviews": totalReviews}).Error
}

func (r *PhotographerRepository) IncrementTotalBookings(photographerID uint) error {
	return r.db.Model(&models.Photographer{}).Where("id = ?", photographerID).
		UpdateColumn("total_bookings", gorm.Expr("total_bookings + 1")).Error
}

// Search lists public profiles, newest first, optionally filtered by city and
// minimum rating.
func (r *PhotographerRepository) Search(city string, minRating float64, limit, offset int) ([]models.Photographer, error) {
	var list []models.Photographer
	q := r.db.Order("rating DESC, created_at DESC").Limit(limit).Offset(offset)
	if city != "" {
		q = q.Where("city = ?", city)
	}
	if minRating > 0 {
		q = q.Where("rating >= ?", minRating)
	}
	err := q.Find(&list).Error
	return list, err
}
