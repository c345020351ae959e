package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles settings endpoints.
type SettingsController struct {
	settingsRepo adapter.SettingsRepository
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(settingsRepo adapter.SettingsRepository) *SettingsController {
	return &SettingsController{settingsRepo: settingsRepo}
}

// LastCategory handles GET /settings/last-category requests.
func (c *SettingsController) LastCategory(ctx *gin.Context) {
	last, err := c.settingsRepo.LastCategory(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LastCategoryResponse{Category: last})
}
