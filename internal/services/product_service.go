package services

import (
	"context"

	"menupay/internal/models/db_models"
	"menupay/internal/models/response_models"
	"menupay/internal/repositories"
	"menupay/pkg/utils"
)

type ProductService interface {
	List(ctx context.Context) ([]response_models.ProductView, error)
}

type productService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List(ctx context.Context) ([]response_models.ProductView, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return productViews(products), nil
}

func productViews(products []db_models.Product) []response_models.ProductView {
	views := make([]response_models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, response_models.ProductView{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.PriceCents,
			Currency:    p.Currency,
		})
	}
	return views
}
