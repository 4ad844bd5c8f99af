package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"menupay/internal/infra"
	"menupay/internal/models/db_models"
	"menupay/internal/models/response_models"
	"menupay/internal/repositories"
	"menupay/pkg/utils"
)

// MenuTokenService issues and rotates the opaque tokens that stand in for
// restaurant ids in customer-facing menu URLs.
type MenuTokenService interface {
	// EnsureToken is an idempotent get-or-create.
	EnsureToken(ctx context.Context, restaurantID uuid.UUID) (string, error)
	// Lookup returns the live token, or nil when none exists. Read-only.
	Lookup(ctx context.Context, restaurantID uuid.UUID) (*string, error)
	RotateToken(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.MenuTokenResponse, error)
	// Resolve maps a public token back to its restaurant. No side effects.
	Resolve(ctx context.Context, publicToken string) (uuid.UUID, error)
}

type menuTokenService struct {
	tokenRepo      repositories.MenuTokenRepository
	restaurantRepo repositories.RestaurantRepository
	baseURL        string
}

func NewMenuTokenService(
	tokenRepo repositories.MenuTokenRepository,
	restaurantRepo repositories.RestaurantRepository,
	cfg infra.Config,
) MenuTokenService {
	return &menuTokenService{
		tokenRepo:      tokenRepo,
		restaurantRepo: restaurantRepo,
		baseURL:        cfg.RedirectBaseURL,
	}
}

func (s *menuTokenService) EnsureToken(ctx context.Context, restaurantID uuid.UUID) (string, error) {
	existing, err := s.tokenRepo.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return existing.PublicToken, nil
	}

	token := &db_models.MenuToken{
		RestaurantID: restaurantID,
		PublicToken:  uuid.NewString(),
	}
	if err := s.tokenRepo.Insert(ctx, token); err != nil {
		// A unique violation here means the generator collided; surfaced as
		// a retryable condition, never swallowed.
		return "", err
	}
	return token.PublicToken, nil
}

func (s *menuTokenService) Lookup(ctx context.Context, restaurantID uuid.UUID) (*string, error) {
	existing, err := s.tokenRepo.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, nil
	}
	return &existing.PublicToken, nil
}

// RotateToken replaces the restaurant's token wholesale. Between the delete
// and the insert there is a window with no live token; concurrent public
// resolution during that window sees not-found, which beats blocking readers
// for an owner-initiated, rare operation.
func (s *menuTokenService) RotateToken(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.MenuTokenResponse, error) {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	if err := s.tokenRepo.DeleteByRestaurantID(ctx, restaurantID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token := &db_models.MenuToken{
		RestaurantID: restaurantID,
		PublicToken:  uuid.NewString(),
	}
	if err := s.tokenRepo.Insert(ctx, token); err != nil {
		return nil, err
	}

	return &response_models.MenuTokenResponse{
		PublicToken: token.PublicToken,
		PublicURL:   fmt.Sprintf("%s/public/menu/%s", s.baseURL, token.PublicToken),
	}, nil
}

func (s *menuTokenService) Resolve(ctx context.Context, publicToken string) (uuid.UUID, error) {
	token, err := s.tokenRepo.FindByToken(ctx, publicToken)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if token == nil {
		return uuid.Nil, utils.ErrMenuNotFound
	}
	return token.RestaurantID, nil
}
