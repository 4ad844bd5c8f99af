package db_models

import "github.com/google/uuid"

// MenuToken maps an opaque public token to a restaurant. At most one live row
// per restaurant; rotation replaces the row wholesale instead of updating it,
// so a retired token can never resolve again.
type MenuToken struct {
	BaseModel
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	PublicToken  string    `gorm:"unique"`
}
