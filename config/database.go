package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hostelhub/models"
)

var DB *gorm.DB

func getDSN() string {
	host := GetEnvDefault("DB_HOST", "localhost")
	port := GetEnvDefault("DB_PORT", "5432")
	user := GetEnvDefault("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	name := GetEnvDefault("DB_NAME", "hostelhub")
	sslmode := GetEnvDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

func ConnectDB() {
	var err error

	DB, err = gorm.Open(postgres.Open(getDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Room{},
		&models.User{},
		&models.Complaint{},
		&models.Fee{},
		&models.Meal{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	fmt.Println("Successfully connected to db")
}
