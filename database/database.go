package database

import (
	"fmt"
	"log"

	config "github.com/aurelienmx/skillmarket/configs"
	"github.com/aurelienmx/skillmarket/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: false,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Country{},
		&models.Language{},
		&models.Job{},
		&models.HardSkill{},
		&models.SoftSkill{},
		&models.Tag{},
		&models.Provider{},
		&models.Client{},
		&models.Service{},
		&models.Article{},
		&models.AvailabilitySlot{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
