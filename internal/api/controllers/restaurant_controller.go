package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menupay/internal/models/request_models"
	"menupay/internal/services"
	"menupay/pkg/utils"
)

type RestaurantController struct {
	restaurantService services.RestaurantService
}

func NewRestaurantController(restaurantService services.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurantService: restaurantService}
}

func (r *RestaurantController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req request_models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and email are required")
		return
	}

	restaurant, err := r.restaurantService.Create(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurant, "Restaurant created successfully")
}

func (r *RestaurantController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	restaurants, err := r.restaurantService.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurants, "")
}

func (r *RestaurantController) Get(c *gin.Context) {
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

	restaurant, err := r.restaurantService.Get(c.Request.Context(), restaurantID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurant, "")
}

func (r *RestaurantController) Update(c *gin.Context) {
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

	var req request_models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and email are required")
		return
	}

	restaurant, err := r.restaurantService.Update(c.Request.Context(), restaurantID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurant, "Restaurant updated successfully")
}

func (r *RestaurantController) Delete(c *gin.Context) {
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

	if err := r.restaurantService.Delete(c.Request.Context(), restaurantID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Restaurant deleted successfully")
}
