package dto

import (
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/assignment"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgetmonth"
)

// AssignCategoryRequest represents the request body for assigning money to
// a category. Amount is the new absolute assigned value, not a delta.
type AssignCategoryRequest struct {
	Amount float64 `json:"amount"`
}

// AssignCategoryResponse represents the result of an assignment.
type AssignCategoryResponse struct {
	Assigned  float64 `json:"assigned"`
	Available float64 `json:"available"`
	Delta     float64 `json:"delta"`
}

// MoveMoneyRequest represents the request body for moving assigned money
// between two categories.
type MoveMoneyRequest struct {
	SourceCategoryID string  `json:"source_category_id" binding:"required,uuid"`
	TargetCategoryID string  `json:"target_category_id" binding:"required,uuid"`
	Amount           float64 `json:"amount" binding:"required"`
}

// MoveMoneyResponse represents the result of a money move.
type MoveMoneyResponse struct {
	Moved           float64 `json:"moved"`
	SourceAssigned  float64 `json:"source_assigned"`
	TargetAssigned  float64 `json:"target_assigned"`
	SourceAvailable float64 `json:"source_available"`
	Warning         string  `json:"warning,omitempty"`
}

// CategoryMonthResponse represents one category row of a month view.
type CategoryMonthResponse struct {
	CategoryID      string  `json:"category_id"`
	GroupID         string  `json:"group_id"`
	Name            string  `json:"name"`
	LinkedAccountID string  `json:"linked_account_id,omitempty"`
	Hidden          bool    `json:"hidden"`
	Assigned        float64 `json:"assigned"`
	Activity        float64 `json:"activity"`
	Available       float64 `json:"available"`
	Overspending    string  `json:"overspending,omitempty"`
}

// RTABreakdownResponse decomposes Ready to Assign for display.
type RTABreakdownResponse struct {
	LeftOver                      float64 `json:"left_over"`
	InflowThisMonth               float64 `json:"inflow_this_month"`
	PositiveCCBalances            float64 `json:"positive_cc_balances"`
	AssignedThisMonth             float64 `json:"assigned_this_month"`
	CashOverspendingPreviousMonth float64 `json:"cash_overspending_previous_month"`
	AssignedInFuture              float64 `json:"assigned_in_future"`
}

// MonthViewResponse represents the full view of one budget month.
type MonthViewResponse struct {
	Month         string                  `json:"month"`
	Categories    []CategoryMonthResponse `json:"categories"`
	ReadyToAssign float64                 `json:"ready_to_assign"`
	Breakdown     RTABreakdownResponse    `json:"breakdown"`
}

// ToMonthViewResponse converts a computed month view to its DTO.
func ToMonthViewResponse(view *budgetmonth.MonthView) MonthViewResponse {
	categories := make([]CategoryMonthResponse, len(view.Categories))
	for i, c := range view.Categories {
		row := CategoryMonthResponse{
			CategoryID:   c.CategoryID.String(),
			GroupID:      c.GroupID.String(),
			Name:         c.Name,
			Hidden:       c.Hidden,
			Assigned:     c.Assigned.ToFloat(),
			Activity:     c.Activity.ToFloat(),
			Available:    c.Available.ToFloat(),
			Overspending: string(c.Overspending),
		}
		if c.LinkedAccountID != nil {
			row.LinkedAccountID = c.LinkedAccountID.String()
		}
		categories[i] = row
	}

	return MonthViewResponse{
		Month:         view.Month,
		Categories:    categories,
		ReadyToAssign: view.ReadyToAssign.ToFloat(),
		Breakdown: RTABreakdownResponse{
			LeftOver:                      view.Breakdown.LeftOver.ToFloat(),
			InflowThisMonth:               view.Breakdown.InflowThisMonth.ToFloat(),
			PositiveCCBalances:            view.Breakdown.PositiveCCBalances.ToFloat(),
			AssignedThisMonth:             view.Breakdown.AssignedThisMonth.ToFloat(),
			CashOverspendingPreviousMonth: view.Breakdown.CashOverspendingPreviousMonth.ToFloat(),
			AssignedInFuture:              view.Breakdown.AssignedInFuture.ToFloat(),
		},
	}
}

// ToAssignCategoryResponse converts assignment output to its DTO.
func ToAssignCategoryResponse(output *assignment.AssignCategoryOutput) AssignCategoryResponse {
	return AssignCategoryResponse{
		Assigned:  output.Assigned.ToFloat(),
		Available: output.Available.ToFloat(),
		Delta:     output.Delta.ToFloat(),
	}
}

// ToMoveMoneyResponse converts move-money output to its DTO.
func ToMoveMoneyResponse(output *assignment.MoveMoneyOutput) MoveMoneyResponse {
	return MoveMoneyResponse{
		Moved:           output.Moved.ToFloat(),
		SourceAssigned:  output.SourceAssigned.ToFloat(),
		TargetAssigned:  output.TargetAssigned.ToFloat(),
		SourceAvailable: output.SourceAvailable.ToFloat(),
		Warning:         string(output.Warning),
	}
}
