package repository

import (
	"focal/internal/models"

	"gorm.io/gorm"
)

type AdminLogRepository struct {
	db *gorm.DB
}

func NewAdminLogRepository(db *gorm.DB) *AdminLogRepository {
	return &AdminLogRepository{db: db}
}

func (r *AdminLogRepository) Create(l *models.AdminLog) error {
	return r.db.Create(l).Error
}

func (r *AdminLogRepository) List(limit, offset int) ([]models.AdminLog, error) {
	var list []models.AdminLog
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
