package config_fx

import (
	"go.uber.org/fx"

	"menupay/internal/infra"
)

var Module = fx.Provide(provideConfig)

func provideConfig() infra.Config {
	return infra.LoadConfig()
}
