package services

import (
	"context"

	"github.com/google/uuid"

	"menupay/internal/models/db_models"
	"menupay/internal/models/request_models"
	"menupay/internal/models/response_models"
	"menupay/internal/repositories"
	"menupay/pkg/utils"
)

type RestaurantService interface {
	Create(ctx context.Context, req request_models.RestaurantRequest, ownerID uuid.UUID) (*response_models.RestaurantResponse, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]response_models.RestaurantResponse, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*response_models.RestaurantResponse, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, req request_models.RestaurantRequest) (*response_models.RestaurantResponse, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type restaurantService struct {
	restaurantRepo repositories.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repositories.RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

func (s *restaurantService) Create(ctx context.Context, req request_models.RestaurantRequest, ownerID uuid.UUID) (*response_models.RestaurantResponse, error) {
	country := req.Country
	if country == "" {
		country = "CH"
	}

	restaurant := &db_models.Restaurant{
		UserID:     ownerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    country,
	}
	if err := s.restaurantRepo.Insert(ctx, restaurant); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return restaurantView(restaurant), nil
}

func (s *restaurantService) List(ctx context.Context, ownerID uuid.UUID) ([]response_models.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		views = append(views, *restaurantView(&restaurants[i]))
	}
	return views, nil
}

func (s *restaurantService) Get(ctx context.Context, id, ownerID uuid.UUID) (*response_models.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}
	return restaurantView(restaurant), nil
}

func (s *restaurantService) Update(ctx context.Context, id, ownerID uuid.UUID, req request_models.RestaurantRequest) (*response_models.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	restaurant.Name = req.Name
	restaurant.Email = req.Email
	restaurant.Phone = req.Phone
	restaurant.Address = req.Address
	restaurant.City = req.City
	restaurant.State = req.State
	restaurant.PostalCode = req.PostalCode
	if req.Country != "" {
		restaurant.Country = req.Country
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return restaurantView(restaurant), nil
}

// Delete removes the restaurant without releasing any connected sub-account;
// a live sub-account is left dangling at the processor.
func (s *restaurantService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if restaurant == nil {
		return utils.ErrRestaurantNotFound
	}
	if err := s.restaurantRepo.Delete(ctx, id, ownerID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func restaurantView(r *db_models.Restaurant) *response_models.RestaurantResponse {
	return &response_models.RestaurantResponse{
		ID:               r.ID.String(),
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		City:             r.City,
		State:            r.State,
		PostalCode:       r.PostalCode,
		Country:          r.Country,
		PaymentAccountID: r.PaymentAccountID,
		OnboardingLink:   r.OnboardingLink,
	}
}
