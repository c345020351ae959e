package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles aggregation endpoints.
type SummaryController struct {
	categoryTotalsUseCase *summary.CategoryTotalsUseCase
	groupSummaryUseCase   *summary.GroupSummaryUseCase
	chartBreakdownUseCase *summary.ChartBreakdownUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	categoryTotalsUseCase *summary.CategoryTotalsUseCase,
	groupSummaryUseCase *summary.GroupSummaryUseCase,
	chartBreakdownUseCase *summary.ChartBreakdownUseCase,
) *SummaryController {
	return &SummaryController{
		categoryTotalsUseCase: categoryTotalsUseCase,
		groupSummaryUseCase:   groupSummaryUseCase,
		chartBreakdownUseCase: chartBreakdownUseCase,
	}
}

// CategoryTotals handles GET /summary/categories requests. Query parameters:
// month ("YYYY-MM") and search, both optional.
func (c *SummaryController) CategoryTotals(ctx *gin.Context) {
	output, err := c.categoryTotalsUseCase.Execute(ctx.Request.Context(), summary.CategoryTotalsInput{
		Month:  ctx.Query("month"),
		Search: ctx.Query("search"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(output.Totals, output.Sum))
}

// GroupSummary handles GET /summary/groups requests. Query parameter: month
// ("YYYY-MM"), optional.
func (c *SummaryController) GroupSummary(ctx *gin.Context) {
	output, err := c.groupSummaryUseCase.Execute(ctx.Request.Context(), summary.GroupSummaryInput{
		Month: ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupSummaryResponse(output))
}

// ChartBreakdown handles GET /summary/chart requests. Query parameter: month
// ("01".."12"), matching that month in any year; optional.
func (c *SummaryController) ChartBreakdown(ctx *gin.Context) {
	output, err := c.chartBreakdownUseCase.Execute(ctx.Request.Context(), summary.ChartBreakdownInput{
		MonthOfYear: ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartBreakdownResponse(output))
}
