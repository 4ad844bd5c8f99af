package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menupay/internal/models/db_models"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error)
	ListAll(ctx context.Context) ([]db_models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
