package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"contenthub-api/services"
	"contenthub-api/utils"
)

// statusFromError maps each service failure kind to its stable HTTP status.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrIllegalArgument):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func sendServiceError(c *gin.Context, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "An unexpected error occurred"
	}
	utils.SendError(c, status, msg)
}
