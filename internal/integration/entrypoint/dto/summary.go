package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/summary"
)

// CategoryTotalResponse represents one category's total.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryTotalsResponse represents the response body for GET /summary/categories.
type CategoryTotalsResponse struct {
	Totals []CategoryTotalResponse `json:"totals"`
	Sum    decimal.Decimal         `json:"sum"`
}

// ToCategoryTotalsResponse converts category totals to their payload.
// Amounts are rounded to two decimals for display.
func ToCategoryTotalsResponse(totals []summary.CategoryTotal, sum decimal.Decimal) CategoryTotalsResponse {
	out := CategoryTotalsResponse{
		Totals: make([]CategoryTotalResponse, 0, len(totals)),
		Sum:    sum.Round(2),
	}
	for _, t := range totals {
		out.Totals = append(out.Totals, CategoryTotalResponse{
			Category: t.Category,
			Total:    t.Total.Round(2),
		})
	}
	return out
}

// GroupBucketResponse represents one group's aggregated expenses.
type GroupBucketResponse struct {
	GroupID   string                     `json:"groupId"`
	GroupName string                     `json:"groupName"`
	SplitType string                     `json:"splitType"`
	Total     decimal.Decimal            `json:"total"`
	YourShare decimal.Decimal            `json:"yourShare"`
	OwedToYou decimal.Decimal            `json:"owedToYou"`
	Shares    map[string]decimal.Decimal `json:"shares"`
}

// GroupSummaryResponse represents the response body for GET /summary/groups.
type GroupSummaryResponse struct {
	Groups         []GroupBucketResponse `json:"groups"`
	TotalYourShare decimal.Decimal       `json:"totalYourShare"`
	TotalOwedToYou decimal.Decimal       `json:"totalOwedToYou"`
}

// ToGroupSummaryResponse converts the group summary to its payload.
// Amounts are rounded to two decimals for display.
func ToGroupSummaryResponse(out *summary.GroupSummaryOutput) GroupSummaryResponse {
	resp := GroupSummaryResponse{
		Groups:         make([]GroupBucketResponse, 0, len(out.Buckets)),
		TotalYourShare: out.TotalYourShare.Round(2),
		TotalOwedToYou: out.TotalOwedToYou.Round(2),
	}
	for _, b := range out.Buckets {
		shares := make(map[string]decimal.Decimal, len(b.Shares))
		for member, share := range b.Shares {
			shares[member] = share.Round(2)
		}
		resp.Groups = append(resp.Groups, GroupBucketResponse{
			GroupID:   b.GroupID,
			GroupName: b.GroupName,
			SplitType: string(b.SplitType),
			Total:     b.Total.Round(2),
			YourShare: b.YourShare.Round(2),
			OwedToYou: b.OwedToYou.Round(2),
			Shares:    shares,
		})
	}
	return resp
}

// ChartBreakdownResponse represents the response body for GET /summary/chart.
type ChartBreakdownResponse struct {
	Totals []CategoryTotalResponse `json:"totals"`
	Sum    decimal.Decimal         `json:"sum"`
}

// ToChartBreakdownResponse converts the chart breakdown to its payload.
func ToChartBreakdownResponse(out *summary.ChartBreakdownOutput) ChartBreakdownResponse {
	totals := ToCategoryTotalsResponse(out.Totals, out.Sum)
	return ChartBreakdownResponse{Totals: totals.Totals, Sum: totals.Sum}
}
