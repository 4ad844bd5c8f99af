package auth_fx

import (
	"go.uber.org/fx"

	"menupay/internal/api/controllers"
	"menupay/internal/repositories"
	"menupay/internal/services"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	services.NewAuthService,
	controllers.NewAuthController,
)
