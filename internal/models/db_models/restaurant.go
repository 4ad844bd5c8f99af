package db_models

import "github.com/google/uuid"

type Restaurant struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string `gorm:"size:2;default:'CH'"`

	// Payment integration fields. The enabled flags are a stale snapshot:
	// status reads go live to the processor and are not written back.
	PaymentAccountID *string `gorm:"index"`
	ChargesEnabled   bool
	PayoutsEnabled   bool
	OnboardingLink   *string

	User      User       `gorm:"foreignKey:UserID"`
	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID"`
}
