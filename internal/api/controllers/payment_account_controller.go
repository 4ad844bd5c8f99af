package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menupay/internal/services"
	"menupay/pkg/utils"
)

type PaymentAccountController struct {
	accountService services.PaymentAccountService
}

func NewPaymentAccountController(accountService services.PaymentAccountService) *PaymentAccountController {
	return &PaymentAccountController{accountService: accountService}
}

// CreateAccount godoc
// @Summary Create a payment sub-account for a restaurant and start onboarding
// @Tags Payment Accounts
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /restaurants/{id}/account/create [post]
func (p *PaymentAccountController) CreateAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrRestaurantNotFound)
		return
	}

	resp, err := p.accountService.CreateAccount(c.Request.Context(), restaurantID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Payment account created")
}

// GetStatus godoc
// @Summary Report the live onboarding/capability status of the sub-account
// @Tags Payment Accounts
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /restaurants/{id}/account/status [get]
func (p *PaymentAccountController) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrRestaurantNotFound)
		return
	}

	status, err := p.accountService.GetStatus(c.Request.Context(), restaurantID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, status, "")
}

// RefreshOnboarding issues a fresh onboarding link for an already created
// sub-account, replacing the stored one.
func (p *PaymentAccountController) RefreshOnboarding(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrRestaurantNotFound)
		return
	}

	resp, err := p.accountService.RefreshOnboarding(c.Request.Context(), restaurantID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Onboarding link refreshed")
}
