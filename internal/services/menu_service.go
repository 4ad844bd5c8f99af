package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"menupay/internal/models/db_models"
	"menupay/internal/models/request_models"
	"menupay/internal/models/response_models"
	"menupay/internal/repositories"
	"menupay/pkg/utils"
)

type MenuService interface {
	ListItems(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.MenuListResponse, error)
	CreateItem(ctx context.Context, restaurantID, ownerID uuid.UUID, req request_models.MenuItemRequest) (*response_models.MenuItemView, error)
	UpdateItem(ctx context.Context, restaurantID, itemID, ownerID uuid.UUID, req request_models.MenuItemRequest) error
	DeleteItem(ctx context.Context, restaurantID, itemID, ownerID uuid.UUID) error
	PublicMenu(ctx context.Context, publicToken string) (*response_models.PublicMenuResponse, error)
}

type menuService struct {
	restaurantRepo repositories.RestaurantRepository
	itemRepo       repositories.MenuItemRepository
	tokenService   MenuTokenService
}

func NewMenuService(
	restaurantRepo repositories.RestaurantRepository,
	itemRepo repositories.MenuItemRepository,
	tokenService MenuTokenService,
) MenuService {
	return &menuService{
		restaurantRepo: restaurantRepo,
		itemRepo:       itemRepo,
		tokenService:   tokenService,
	}
}

func (s *menuService) ListItems(ctx context.Context, restaurantID, ownerID uuid.UUID) (*response_models.MenuListResponse, error) {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	items, err := s.itemRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	publicToken, err := s.tokenService.Lookup(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return &response_models.MenuListResponse{
		Items:       menuItemViews(items),
		PublicToken: publicToken,
	}, nil
}

func (s *menuService) CreateItem(ctx context.Context, restaurantID, ownerID uuid.UUID, req request_models.MenuItemRequest) (*response_models.MenuItemView, error) {
	if req.Name == "" || req.PriceCents <= 0 {
		return nil, utils.ErrValidationFailed
	}

	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	// First menu item brings the public token into existence so the menu is
	// shareable right away. A failure here does not block the item itself.
	if _, err := s.tokenService.EnsureToken(ctx, restaurantID); err != nil {
		log.Printf("Failed to ensure menu token for restaurant %s: %v", restaurantID, err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "chf"
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &db_models.MenuItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		Currency:     currency,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Available:    available,
	}
	if err := s.itemRepo.Insert(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := menuItemView(item)
	return &view, nil
}

func (s *menuService) UpdateItem(ctx context.Context, restaurantID, itemID, ownerID uuid.UUID, req request_models.MenuItemRequest) error {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if restaurant == nil {
		return utils.ErrRestaurantNotFound
	}

	item, err := s.itemRepo.FindByIDAndRestaurant(ctx, itemID, restaurantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrMenuItemNotFound
	}

	item.Name = req.Name
	item.Description = req.Description
	item.PriceCents = req.PriceCents
	if req.Currency != "" {
		item.Currency = req.Currency
	}
	item.Category = req.Category
	item.ImageURL = req.ImageURL
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *menuService) DeleteItem(ctx context.Context, restaurantID, itemID, ownerID uuid.UUID) error {
	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if restaurant == nil {
		return utils.ErrRestaurantNotFound
	}

	if err := s.itemRepo.Delete(ctx, itemID, restaurantID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *menuService) PublicMenu(ctx context.Context, publicToken string) (*response_models.PublicMenuResponse, error) {
	restaurantID, err := s.tokenService.Resolve(ctx, publicToken)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	items, err := s.itemRepo.ListAvailableByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PublicMenuResponse{
		Restaurant: response_models.RestaurantPublic{
			ID:      restaurant.ID.String(),
			Name:    restaurant.Name,
			Email:   restaurant.Email,
			Phone:   restaurant.Phone,
			Address: restaurant.Address,
			City:    restaurant.City,
			State:   restaurant.State,
		},
		Menu: menuItemViews(items),
	}, nil
}

func menuItemView(item *db_models.MenuItem) response_models.MenuItemView {
	return response_models.MenuItemView{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Currency:    item.Currency,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
	}
}

func menuItemViews(items []db_models.MenuItem) []response_models.MenuItemView {
	views := make([]response_models.MenuItemView, 0, len(items))
	for i := range items {
		views = append(views, menuItemView(&items[i]))
	}
	return views
}
