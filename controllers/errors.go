package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-pos/apperr"
	"cafe-pos/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP status
// codes: not found -> 404, validation -> 400, conflict -> 409, anything
// else is a store failure -> 500.
func respondServiceError(c *gin.Context, err error) {
	var code int
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
		utils.ErrorLogger.Printf("store error: %v", err)
	}
	utils.RespondError(c, code, err)
}
