package db_models

import "github.com/google/uuid"

type MenuItem struct {
	BaseModel
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	PriceCents   int64
	Currency     string `gorm:"size:3;default:'chf'"`
	Category     string
	ImageURL     string
	Available    bool `gorm:"default:true"`
}
