package menu_fx

import (
	"go.uber.org/fx"

	"menupay/internal/api/controllers"
	"menupay/internal/repositories"
	"menupay/internal/services"
)

var Module = fx.Provide(
	repositories.NewMenuItemRepository,
	repositories.NewMenuTokenRepository,
	services.NewMenuTokenService,
	services.NewMenuService,
	controllers.NewMenuController,
)
