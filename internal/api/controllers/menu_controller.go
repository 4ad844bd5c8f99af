package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menupay/internal/models/request_models"
	"menupay/internal/services"
	"menupay/pkg/utils"
)

type MenuController struct {
	menuService  services.MenuService
	tokenService services.MenuTokenService
}

func NewMenuController(menuService services.MenuService, tokenService services.MenuTokenService) *MenuController {
	return &MenuController{
		menuService:  menuService,
		tokenService: tokenService,
	}
}

func (m *MenuController) ListItems(c *gin.Context) {
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

	resp, err := m.menuService.ListItems(c.Request.Context(), restaurantID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (m *MenuController) CreateItem(c *gin.Context) {
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

	var req request_models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and price are required")
		return
	}

	item, err := m.menuService.CreateItem(c.Request.Context(), restaurantID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Menu item created")
}

func (m *MenuController) UpdateItem(c *gin.Context) {
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
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrMenuItemNotFound)
		return
	}

	var req request_models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and price are required")
		return
	}

	if err := m.menuService.UpdateItem(c.Request.Context(), restaurantID, itemID, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Menu item updated")
}

func (m *MenuController) DeleteItem(c *gin.Context) {
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
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrMenuItemNotFound)
		return
	}

	if err := m.menuService.DeleteItem(c.Request.Context(), restaurantID, itemID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Menu item deleted")
}

// RotateToken godoc
// @Summary Generate or rotate the restaurant's public menu token
// @Tags Menu
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /restaurants/{id}/menu/token [post]
func (m *MenuController) RotateToken(c *gin.Context) {
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

	resp, err := m.tokenService.RotateToken(c.Request.Context(), restaurantID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Public token generated")
}

// PublicMenu serves the customer-facing menu; no auth, token only.
func (m *MenuController) PublicMenu(c *gin.Context) {
	resp, err := m.menuService.PublicMenu(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}
