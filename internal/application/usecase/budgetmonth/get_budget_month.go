package budgetmonth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

// GetBudgetMonthInput represents the input for the month view query.
type GetBudgetMonthInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Month    string
}

// GetBudgetMonthOutput represents the computed month view.
type GetBudgetMonthOutput struct {
	View *MonthView
}

// GetBudgetMonthUseCase computes (or serves from cache) the full view of a
// budget month.
type GetBudgetMonthUseCase struct {
	budgetRepo adapter.BudgetRepository
	builder    *Builder
	cache      adapter.BudgetMonthCache
}

// NewGetBudgetMonthUseCase creates a new GetBudgetMonthUseCase instance.
func NewGetBudgetMonthUseCase(
	budgetRepo adapter.BudgetRepository,
	builder *Builder,
	cache adapter.BudgetMonthCache,
) *GetBudgetMonthUseCase {
	return &GetBudgetMonthUseCase{
		budgetRepo: budgetRepo,
		builder:    builder,
		cache:      cache,
	}
}

// Execute performs the month view query.
func (uc *GetBudgetMonthUseCase) Execute(ctx context.Context, input GetBudgetMonthInput) (*GetBudgetMonthOutput, error) {
	if !budget.IsValidMonth(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	b, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if b == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	if b.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"budget does not belong to the authenticated user",
			domainerror.ErrNotAuthorizedForBudget,
		)
	}

	if payload, err := uc.cache.Get(ctx, input.BudgetID, input.Month); err == nil && payload != nil {
		var view MonthView
		if err := json.Unmarshal(payload, &view); err == nil {
			return &GetBudgetMonthOutput{View: &view}, nil
		}
		slog.Warn("discarding unreadable month snapshot",
			"budget_id", input.BudgetID, "month", input.Month)
	}

	view, err := uc.builder.Build(ctx, input.BudgetID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to build budget month: %w", err)
	}

	if payload, err := json.Marshal(view); err == nil {
		if err := uc.cache.Set(ctx, input.BudgetID, input.Month, payload); err != nil {
			slog.Warn("failed to cache month snapshot",
				"budget_id", input.BudgetID, "month", input.Month, "error", err)
		}
	}

	return &GetBudgetMonthOutput{View: view}, nil
}
