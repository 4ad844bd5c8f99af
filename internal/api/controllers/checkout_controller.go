package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menupay/internal/models/request_models"
	"menupay/internal/services"
	"menupay/pkg/utils"
)

type CheckoutController struct {
	checkoutService services.CheckoutService
}

func NewCheckoutController(checkoutService services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// CreateAuthenticatedCheckout godoc
// @Summary Create a checkout session for a catalog product
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body request_models.AuthenticatedCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checkout/authenticated [post]
func (ch *CheckoutController) CreateAuthenticatedCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req request_models.AuthenticatedCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "productId and restaurantId are required")
		return
	}

	resp, err := ch.checkoutService.CreateAuthenticatedCheckout(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Checkout session created")
}

// CreatePublicCheckout godoc
// @Summary Create a checkout session from the public menu page
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body request_models.PublicCheckoutRequest true "Public checkout payload"
// @Success 200 {object} utils.APIResponse
// @Router /checkout/public [post]
func (ch *CheckoutController) CreatePublicCheckout(c *gin.Context) {
	var req request_models.PublicCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := ch.checkoutService.CreatePublicCheckout(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Checkout session created")
}
