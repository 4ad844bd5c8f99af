package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"menupay/internal/models/db_models"
)

func InitPostgresql(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Restaurant{},
		&db_models.Product{},
		&db_models.MenuItem{},
		&db_models.MenuToken{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	seedProducts(db)

	return db
}

// seedProducts fills the shared demo catalog on first boot.
func seedProducts(db *gorm.DB) {
	var count int64
	if err := db.Model(&db_models.Product{}).Count(&count).Error; err != nil {
		log.Printf("Error counting products: %v", err)
		return
	}
	if count > 0 {
		return
	}

	seed := []db_models.Product{
		{Name: "Margherita Pizza", Description: "Classic tomato, mozzarella, basil", PriceCents: 1850, Currency: "chf"},
		{Name: "Spaghetti Carbonara", Description: "Pasta with pancetta, egg, parmesan", PriceCents: 2200, Currency: "chf"},
		{Name: "Caesar Salad", Description: "Romaine, croutons, parmesan", PriceCents: 1450, Currency: "chf"},
		{Name: "Cheeseburger", Description: "Beef patty, cheese, lettuce, tomato", PriceCents: 1950, Currency: "chf"},
		{Name: "Iced Latte", Description: "Espresso, milk, ice", PriceCents: 650, Currency: "chf"},
	}
	if err := db.Create(&seed).Error; err != nil {
		log.Printf("Error seeding products: %v", err)
	}
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
