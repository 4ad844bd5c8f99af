package payment_fx

import (
	"go.uber.org/fx"

	"menupay/internal/api/controllers"
	"menupay/internal/infra"
	"menupay/internal/processor"
	"menupay/internal/services"
)

var Module = fx.Provide(
	provideProcessor,
	services.NewPaymentAccountService,
	services.NewCheckoutService,
	controllers.NewPaymentAccountController,
	controllers.NewCheckoutController,
)

func provideProcessor(cfg infra.Config) processor.PaymentProcessor {
	return processor.NewStripeProcessor(processor.StripeConfig{
		SecretKey: cfg.StripeSecretKey,
	})
}
