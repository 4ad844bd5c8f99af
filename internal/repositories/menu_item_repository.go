package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menupay/internal/models/db_models"
)

type MenuItemRepository interface {
	Insert(ctx context.Context, item *db_models.MenuItem) error
	FindByIDAndRestaurant(ctx context.Context, id, restaurantID uuid.UUID) (*db_models.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]db_models.MenuItem, error)
	ListAvailableByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]db_models.MenuItem, error)
	Update(ctx context.Context, item *db_models.MenuItem) error
	Delete(ctx context.Context, id, restaurantID uuid.UUID) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Insert(ctx context.Context, item *db_models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) FindByIDAndRestaurant(ctx context.Context, id, restaurantID uuid.UUID) (*db_models.MenuItem, error) {
	var item db_models.MenuItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]db_models.MenuItem, error) {
	var items []db_models.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category, name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) ListAvailableByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]db_models.MenuItem, error) {
	var items []db_models.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND available = TRUE", restaurantID).
		Order("category, name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *db_models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) Delete(ctx context.Context, id, restaurantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&db_models.MenuItem{}).Error
}
