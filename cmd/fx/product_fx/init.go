package product_fx

import (
	"go.uber.org/fx"

	"menupay/internal/api/controllers"
	"menupay/internal/repositories"
	"menupay/internal/services"
)

var Module = fx.Provide(
	repositories.NewProductRepository,
	services.NewProductService,
	controllers.NewProductController,
)
