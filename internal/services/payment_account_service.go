package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"menupay/internal/infra"
	"menupay/internal/models/db_models"
	"menupay/internal/models/response_models"
	"menupay/internal/processor"
	"menupay/internal/repositories"
	"menupay/pkg/utils"
)

// PaymentAccountService drives the sub-account lifecycle for a restaurant:
// NO_ACCOUNT -> account created, onboarding pending -> active. The last
// transition is processor-driven and only ever observed here via GetStatus.
type PaymentAccountService interface {
	CreateAccount(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.CreateAccountResponse, error)
	RefreshOnboarding(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.OnboardingLinkResponse, error)
	GetStatus(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.AccountStatusResponse, error)
}

type paymentAccountService struct {
	restaurantRepo repositories.RestaurantRepository
	processor      processor.PaymentProcessor
	baseURL        string
}

func NewPaymentAccountService(
	restaurantRepo repositories.RestaurantRepository,
	proc processor.PaymentProcessor,
	cfg infra.Config,
) PaymentAccountService {
	return &paymentAccountService{
		restaurantRepo: restaurantRepo,
		processor:      proc,
		baseURL:        cfg.RedirectBaseURL,
	}
}

func (s *paymentAccountService) CreateAccount(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.CreateAccountResponse, error) {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	profile := processor.AccountProfile{
		Name:    restaurant.Name,
		URL:     fmt.Sprintf("https://restaurant-platform.test/restaurants/%s", restaurant.ID),
		Email:   restaurant.Email,
		Country: restaurant.Country,
		Address: supportAddress(restaurant),
	}

	// Nothing is persisted until the processor accepts the account.
	accountID, err := s.processor.CreateExpressAccount(ctx, profile)
	if err != nil {
		return nil, err
	}

	// Calling create again on a connected restaurant overwrites the stored
	// id and orphans the previous sub-account. Known gap, kept as-is.
	err = s.restaurantRepo.UpdatePaymentFields(ctx, restaurant.ID, map[string]interface{}{
		"payment_account_id": accountID,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	onboardingURL, err := s.issueOnboardingLink(ctx, restaurant.ID, accountID)
	if err != nil {
		return nil, err
	}

	return &response_models.CreateAccountResponse{
		AccountID:     accountID,
		OnboardingURL: onboardingURL,
	}, nil
}

func (s *paymentAccountService) RefreshOnboarding(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.OnboardingLinkResponse, error) {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}
	if restaurant.PaymentAccountID == nil || *restaurant.PaymentAccountID == "" {
		return nil, utils.ErrAccountNotCreated
	}

	onboardingURL, err := s.issueOnboardingLink(ctx, restaurant.ID, *restaurant.PaymentAccountID)
	if err != nil {
		return nil, err
	}
	return &response_models.OnboardingLinkResponse{OnboardingURL: onboardingURL}, nil
}

// GetStatus reads the live sub-account state from the processor. The
// snapshot is returned to the caller and deliberately not written back to
// the restaurant row.
func (s *paymentAccountService) GetStatus(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.AccountStatusResponse, error) {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	if restaurant.PaymentAccountID == nil || *restaurant.PaymentAccountID == "" {
		return &response_models.AccountStatusResponse{
			Status: response_models.AccountStatusNotStarted,
		}, nil
	}

	snapshot, err := s.processor.RetrieveAccount(ctx, *restaurant.PaymentAccountID)
	if err != nil {
		return nil, err
	}

	return &response_models.AccountStatusResponse{
		Status:         response_models.AccountStatusCreated,
		AccountID:      snapshot.ID,
		ChargesEnabled: &snapshot.ChargesEnabled,
		PayoutsEnabled: &snapshot.PayoutsEnabled,
		Requirements:   snapshot.Requirements,
	}, nil
}

// issueOnboardingLink requests a fresh account-onboarding link and stores it,
// superseding any previous one. Onboarding links are single-use and
// short-lived by processor contract, so overwriting is correct.
func (s *paymentAccountService) issueOnboardingLink(ctx context.Context, restaurantID uuid.UUID, accountID string) (string, error) {
	refreshURL := fmt.Sprintf("%s/restaurants/%s/account/refresh", s.baseURL, restaurantID)
	returnURL := fmt.Sprintf("%s/restaurants/%s/account/return", s.baseURL, restaurantID)

	onboardingURL, err := s.processor.CreateOnboardingLink(ctx, accountID, refreshURL, returnURL)
	if err != nil {
		return "", err
	}

	err = s.restaurantRepo.UpdatePaymentFields(ctx, restaurantID, map[string]interface{}{
		"onboarding_link": onboardingURL,
	})
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return onboardingURL, nil
}

// supportAddress is nil when the restaurant has no address data; a country
// code alone does not make an address worth sending.
func supportAddress(r *db_models.Restaurant) *processor.SupportAddress {
	if r.Address == "" && r.City == "" && r.State == "" && r.PostalCode == "" {
		return nil
	}
	return &processor.SupportAddress{
		Line1:      r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}
