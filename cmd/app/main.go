package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"menupay/cmd/fx/auth_fx"
	"menupay/cmd/fx/config_fx"
	"menupay/cmd/fx/db_fx"
	"menupay/cmd/fx/menu_fx"
	"menupay/cmd/fx/payment_fx"
	"menupay/cmd/fx/product_fx"
	"menupay/cmd/fx/restaurant_fx"
	"menupay/internal/api/controllers"
	"menupay/internal/infra"
	"menupay/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		auth_fx.Module,
		restaurant_fx.Module,
		payment_fx.Module,
		menu_fx.Module,
		product_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg infra.Config,
	authController *controllers.AuthController,
	restaurantController *controllers.RestaurantController,
	paymentAccountController *controllers.PaymentAccountController,
	checkoutController *controllers.CheckoutController,
	menuController *controllers.MenuController,
	productController *controllers.ProductController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg,
		authController,
		restaurantController,
		paymentAccountController,
		checkoutController,
		menuController,
		productController,
	)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	cfg infra.Config,
	authController *controllers.AuthController,
	restaurantController *controllers.RestaurantController,
	paymentAccountController *controllers.PaymentAccountController,
	checkoutController *controllers.CheckoutController,
	menuController *controllers.MenuController,
	productController *controllers.ProductController,
) {
	auth := middleware.JWTAuthMiddleware([]byte(cfg.JWTSecret))
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authController.SignUp)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/user", auth, authController.CurrentUser)

	restaurants := api.Group("/restaurants", auth)
	restaurants.POST("", restaurantController.Create)
	restaurants.GET("", restaurantController.List)
	restaurants.GET("/:id", restaurantController.Get)
	restaurants.PUT("/:id", restaurantController.Update)
	restaurants.DELETE("/:id", restaurantController.Delete)

	restaurants.POST("/:id/account/create", paymentAccountController.CreateAccount)
	restaurants.GET("/:id/account/status", paymentAccountController.GetStatus)
	restaurants.GET("/:id/account/refresh", paymentAccountController.RefreshOnboarding)

	restaurants.GET("/:id/menu", menuController.ListItems)
	restaurants.POST("/:id/menu", menuController.CreateItem)
	restaurants.PUT("/:id/menu/items/:itemId", menuController.UpdateItem)
	restaurants.DELETE("/:id/menu/items/:itemId", menuController.DeleteItem)
	restaurants.POST("/:id/menu/token", menuController.RotateToken)

	api.GET("/products", auth, productController.List)

	checkout := api.Group("/checkout")
	checkout.POST("/authenticated", auth, checkoutController.CreateAuthenticatedCheckout)
	checkout.POST("/public", checkoutController.CreatePublicCheckout)

	api.GET("/menu/public/:token", menuController.PublicMenu)
}
