package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	addUseCase    *category.AddCategoryUseCase
	removeUseCase *category.RemoveCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	addUseCase *category.AddCategoryUseCase,
	removeUseCase *category.RemoveCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: output.Categories})
}

// Add handles POST /categories requests.
func (c *CategoryController) Add(ctx *gin.Context) {
	var req dto.AddCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), category.AddCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CategoryResponse{Name: output.Name})
}

// Remove handles DELETE /categories/:name requests.
func (c *CategoryController) Remove(ctx *gin.Context) {
	err := c.removeUseCase.Execute(ctx.Request.Context(), category.RemoveCategoryInput{
		Name: ctx.Param("name"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
