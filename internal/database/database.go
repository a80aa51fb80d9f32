package database

import (
	"errors"
	"log"

	"focal/config"
	"focal/internal/domain"
	"focal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // errors only, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Photographer{},
		&models.Availability{},
		&models.BlockedDate{},
		&models.Booking{},
		&models.Payment{},
		&models.Refund{},
		&models.Earning{},
		&models.Review{},
		&models.Conversation{},
		&models.Message{},
		&models.Media{},
		&models.Notification{},
		&models.AdminLog{},
	)
}

// SeedAdmin ensures the configured admin account exists. Idempotent; never
// overwrites an existing account's password.
func SeedAdmin(db *gorm.DB, cfg *config.PlatformConfig) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}
	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[seed] admin lookup failed: %v", err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] admin password hash failed: %v", err)
		return
	}
	admin := &models.User{
		FirstName:     "Platform",
		LastName:      "Admin",
		Email:         cfg.AdminEmail,
		PasswordHash:  string(hash),
		Role:          domain.RoleAdmin,
		EmailVerified: true,
		IsActive:      true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("[seed] admin create failed: %v", err)
		return
	}
	log.Printf("[seed] admin account created: %s", cfg.AdminEmail)
}
