package db_models

// Product is the shared demo catalog used by the authenticated checkout flow.
type Product struct {
	BaseModel
	Name        string
	Description string
	PriceCents  int64
	Currency    string `gorm:"size:3;default:'chf'"`
}
