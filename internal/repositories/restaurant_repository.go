package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menupay/internal/models/db_models"
)

// RestaurantRepository is the identity and ownership store for restaurants.
// Lookups scoped by owner return nil for rows that exist under a different
// owner, so callers cannot tell "absent" from "not yours".
type RestaurantRepository interface {
	Insert(ctx context.Context, restaurant *db_models.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Restaurant, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*db_models.Restaurant, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Restaurant, error)
	Update(ctx context.Context, restaurant *db_models.Restaurant) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	UpdatePaymentFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Insert(ctx context.Context, restaurant *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Restaurant, error) {
	var restaurant db_models.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*db_models.Restaurant, error) {
	var restaurant db_models.Restaurant
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&db_models.Restaurant{}).Error
}

func (r *restaurantRepository) UpdatePaymentFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Restaurant{}).
		Where("id = ?", id).
		Updates(fields).Error
}
