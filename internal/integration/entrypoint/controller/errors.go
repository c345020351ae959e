// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// respondError maps a use case error to an HTTP response. Validation errors
// carry the offending field for inline display; everything else collapses to
// a generic server error.
func respondError(ctx *gin.Context, err error) {
	var verr *domainerror.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(statusForCode(verr.Code), dto.ErrorResponse{
			Error: verr.Message,
			Code:  verr.Code,
			Field: verr.Field,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeGroupNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
