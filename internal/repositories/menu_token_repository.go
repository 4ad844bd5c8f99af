package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"menupay/internal/models/db_models"
	"menupay/pkg/utils"
)

const uniqueViolation = "23505"

// MenuTokenRepository owns the token table. Rotation is delete-then-insert,
// never update in place: a retired token string must stop resolving instead
// of pointing at a different restaurant.
type MenuTokenRepository interface {
	Insert(ctx context.Context, token *db_models.MenuToken) error
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*db_models.MenuToken, error)
	FindByToken(ctx context.Context, publicToken string) (*db_models.MenuToken, error)
	DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) error
}

type menuTokenRepository struct {
	db *gorm.DB
}

func NewMenuTokenRepository(db *gorm.DB) MenuTokenRepository {
	return &menuTokenRepository{db: db}
}

// Insert relies on the table's uniqueness constraint as the second line of
// defense against generator collisions. A violation is surfaced, not
// swallowed: callers may retry with a fresh token.
func (r *menuTokenRepository) Insert(ctx context.Context, token *db_models.MenuToken) error {
	err := r.db.WithContext(ctx).Create(token).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return utils.ErrTokenCollision
		}
		return err
	}
	return nil
}

func (r *menuTokenRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*db_models.MenuToken, error) {
	var token db_models.MenuToken
	err := r.db.WithContext(ctx).First(&token, "restaurant_id = ?", restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *menuTokenRepository) FindByToken(ctx context.Context, publicToken string) (*db_models.MenuToken, error) {
	var token db_models.MenuToken
	err := r.db.WithContext(ctx).First(&token, "public_token = ?", publicToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *menuTokenRepository) DeleteByRestaurantID(ctx context.Context, restaurantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Where("restaurant_id = ?", restaurantID).
		Delete(&db_models.MenuToken{}).Error
}
