package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"menupay/internal/infra"
	"menupay/internal/models/request_models"
	"menupay/internal/models/response_models"
	"menupay/internal/processor"
	"menupay/internal/repositories"
	"menupay/pkg/utils"
)

// CheckoutService builds hosted checkout sessions against a restaurant's
// sub-account. Nothing is persisted locally; the processor's session is the
// only durable trace.
type CheckoutService interface {
	CreateAuthenticatedCheckout(ctx context.Context, req request_models.AuthenticatedCheckoutRequest, ownerID uuid.UUID) (*response_models.CheckoutResponse, error)
	CreatePublicCheckout(ctx context.Context, req request_models.PublicCheckoutRequest) (*response_models.CheckoutResponse, error)
}

type checkoutService struct {
	restaurantRepo repositories.RestaurantRepository
	productRepo    repositories.ProductRepository
	processor      processor.PaymentProcessor
	baseURL        string
}

func NewCheckoutService(
	restaurantRepo repositories.RestaurantRepository,
	productRepo repositories.ProductRepository,
	proc processor.PaymentProcessor,
	cfg infra.Config,
) CheckoutService {
	return &checkoutService{
		restaurantRepo: restaurantRepo,
		productRepo:    productRepo,
		processor:      proc,
		baseURL:        cfg.RedirectBaseURL,
	}
}

func (s *checkoutService) CreateAuthenticatedCheckout(ctx context.Context, req request_models.AuthenticatedCheckoutRequest, ownerID uuid.UUID) (*response_models.CheckoutResponse, error) {
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, utils.ErrRestaurantNotFound
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, utils.ErrProductNotFound
	}

	restaurant, err := s.restaurantRepo.FindByIDAndOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}
	if restaurant.PaymentAccountID == nil || *restaurant.PaymentAccountID == "" {
		return nil, utils.ErrAccountNotConnected
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	input := processor.CheckoutInput{
		AccountID: *restaurant.PaymentAccountID,
		LineItems: []processor.LineItem{{
			Name:        product.Name,
			Description: product.Description,
			Currency:    product.Currency,
			UnitAmount:  product.PriceCents,
			Quantity:    1,
		}},
		SuccessURL: s.baseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/checkout/cancel",
		// Write-only reconciliation breadcrumbs; nothing here reads them back.
		Metadata: map[string]string{
			"restaurant_id": restaurant.ID.String(),
			"product_id":    product.ID.String(),
			"user_id":       ownerID.String(),
		},
	}

	checkoutURL, err := s.processor.CreateCheckoutSession(ctx, input)
	if err != nil {
		return nil, err
	}
	return &response_models.CheckoutResponse{CheckoutURL: checkoutURL}, nil
}

// CreatePublicCheckout is deliberately unauthenticated: it serves the
// customer-facing menu page. Line items are taken from the caller verbatim,
// without cross-checking prices against the stored menu, and the capability
// flags are not consulted; a half-onboarded account's session is the
// processor's to reject.
func (s *checkoutService) CreatePublicCheckout(ctx context.Context, req request_models.PublicCheckoutRequest) (*response_models.CheckoutResponse, error) {
	if req.RestaurantID == "" || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: restaurantId and items are required", utils.ErrValidationFailed)
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, utils.ErrRestaurantNotFound
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}
	if restaurant.PaymentAccountID == nil || *restaurant.PaymentAccountID == "" {
		return nil, utils.ErrAccountNotConnected
	}

	lineItems := make([]processor.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, processor.LineItem{
			Name:       item.Name,
			Currency:   "chf",
			UnitAmount: item.Price,
			Quantity:   item.Quantity,
		})
	}

	input := processor.CheckoutInput{
		AccountID:  *restaurant.PaymentAccountID,
		LineItems:  lineItems,
		SuccessURL: s.baseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  fmt.Sprintf("%s/public/menu/%s", s.baseURL, restaurant.ID),
		Metadata: map[string]string{
			"restaurant_id": restaurant.ID.String(),
		},
	}

	checkoutURL, err := s.processor.CreateCheckoutSession(ctx, input)
	if err != nil {
		return nil, err
	}
	return &response_models.CheckoutResponse{CheckoutURL: checkoutURL}, nil
}
