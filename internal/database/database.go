package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/punjabi-rishtey/admin-api/internal/config"
	"github.com/punjabi-rishtey/admin-api/internal/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for every table the console manages.
func Migrate() error {
	return DB.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Astrology{},
		&models.Education{},
		&models.Family{},
		&models.Profession{},
		&models.Payment{},
		&models.Testimonial{},
		&models.Coupon{},
		&models.MembershipPlan{},
		&models.BroadcastMessage{},
		&models.Review{},
		&models.QRAsset{},
		&models.Inquiry{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
