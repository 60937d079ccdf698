package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shoppee-dev/shoppee-api/config"
	"github.com/shoppee-dev/shoppee-api/models"
	"github.com/shoppee-dev/shoppee-api/routes"
)

func main() {
	log.Println("Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	config.Cfg.Init()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddress{},
		&models.Province{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Seed reference data
	if err := loadProvinces(db); err != nil {
		log.Fatalf("Province seeding failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", "./uploads")

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := config.Cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := config.Cfg.Database.URL; databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.Cfg.Database.Host,
		config.Cfg.Database.Username,
		config.Cfg.Database.Password,
		config.Cfg.Database.DatabaseName,
		config.Cfg.Database.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// loadProvinces seeds the province reference table from data/provinces.json.
// Rows that already exist are left alone.
func loadProvinces(db *gorm.DB) error {
	content, readErr := os.ReadFile("data/provinces.json")
	if readErr != nil {
		if os.IsNotExist(readErr) {
			log.Println("No province seed file found, skipping")
			return nil
		}
		return readErr
	}
	var provinces []models.Province
	if err := json.Unmarshal(content, &provinces); err != nil {
		return err
	}
	for _, province := range provinces {
		if err := db.Create(&province).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.Is(err, gorm.ErrDuplicatedKey) ||
				(errors.As(err, &pgErr) && pgErr.Code == "23505") {
				continue
			}
			return err
		}
	}
	return nil
}
