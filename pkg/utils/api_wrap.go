package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels onto HTTP statuses. Not-found and
// not-owned are indistinguishable on purpose: both come back as the same 404.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrMenuNotFound),
		errors.Is(err, ErrMenuItemNotFound),
		errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAccountNotConnected),
		errors.Is(err, ErrAccountNotCreated),
		errors.Is(err, ErrValidationFailed),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrProcessorRejected):
		// the processor's own message rides along in the wrapped error
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrTokenCollision):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
