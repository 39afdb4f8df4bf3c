// Package budgetmonth assembles computed budget month views: per-category
// available balances, credit card payment funding, overspending
// classification and the Ready-to-Assign figure. The arithmetic lives in
// the domain engine; this package feeds it pre-aggregated query data in
// chronological order.
package budgetmonth

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// CategoryMonth is one category's computed state for one month.
type CategoryMonth struct {
	CategoryID      uuid.UUID
	GroupID         uuid.UUID
	Name            string
	LinkedAccountID *uuid.UUID
	Hidden          bool
	Assigned        money.Milliunit
	Activity        money.Milliunit
	Available       money.Milliunit
	Overspending    budget.OverspendingKind
}

// MonthView is the full computed view of one budget month.
type MonthView struct {
	Month         string
	Categories    []CategoryMonth
	ReadyToAssign money.Milliunit
	Breakdown     budget.RTABreakdown
}

// Builder computes month views for a budget. It holds no state between
// calls; every Build starts from fresh repository aggregates.
type Builder struct {
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	budgetMonthRepo adapter.BudgetMonthRepository
	transactionRepo adapter.TransactionRepository
	clock           budget.Clock
}

// NewBuilder creates a new Builder instance.
func NewBuilder(
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	budgetMonthRepo adapter.BudgetMonthRepository,
	transactionRepo adapter.TransactionRepository,
	clock budget.Clock,
) *Builder {
	return &Builder{
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		budgetMonthRepo: budgetMonthRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// creditData groups one credit account's aggregates with its linked
// payment category.
type creditData struct {
	paymentCategoryID uuid.UUID
	spending          map[string][]budget.CategorySpending
	payments          map[string]money.Milliunit
}

// computation carries the chronological rollup through a target month.
type computation struct {
	categories []*entity.Category
	byID       map[uuid.UUID]*entity.Category

	// per viewed-through month
	available map[uuid.UUID]money.Milliunit
	activity  map[uuid.UUID]money.Milliunit
	assigned  map[uuid.UUID]money.Milliunit

	cashSpending     map[uuid.UUID]money.Milliunit
	cashOverspending map[string]money.Milliunit
	assignedByMonth  map[string]money.Milliunit
}

// Build computes the complete view of one budget month.
func (b *Builder) Build(ctx context.Context, budgetID uuid.UUID, month string) (*MonthView, error) {
	comp, err := b.compute(ctx, budgetID, month)
	if err != nil {
		return nil, err
	}

	view := &MonthView{Month: month}

	totalAvailable := money.Zero
	for _, cat := range comp.categories {
		avail := comp.available[cat.ID]
		totalAvailable += avail

		view.Categories = append(view.Categories, CategoryMonth{
			CategoryID:      cat.ID,
			GroupID:         cat.GroupID,
			Name:            cat.Name,
			LinkedAccountID: cat.LinkedAccountID,
			Hidden:          cat.Hidden,
			Assigned:        comp.assigned[cat.ID],
			Activity:        comp.activity[cat.ID],
			Available:       avail,
			Overspending: budget.ClassifyOverspending(budget.OverspendingInput{
				CategoryID:      cat.ID,
				Available:       avail,
				LinkedAccountID: cat.LinkedAccountID,
				CashSpending:    comp.cashSpending[cat.ID],
			}),
		})
	}

	cashBalance, err := b.transactionRepo.CashBalance(ctx, budgetID, month)
	if err != nil {
		return nil, err
	}
	creditBalances, err := b.transactionRepo.CreditAccountBalances(ctx, budgetID, month)
	if err != nil {
		return nil, err
	}
	positiveCC := money.Zero
	for _, bal := range creditBalances {
		positiveCC += money.Max(bal, money.Zero)
	}

	// Past months are clamped to data up to the viewed month: assignments
	// in months the user has not reached yet do not leak backwards.
	futureAssigned := money.Zero
	if !budget.IsPastMonth(month, b.clock.CurrentMonth()) {
		futureAssigned, err = b.budgetMonthRepo.SumAssignedAfter(ctx, budgetID, month)
		if err != nil {
			return nil, err
		}
	}

	view.ReadyToAssign = budget.CalculateReadyToAssign(budget.RTAInputs{
		CashBalance:        cashBalance,
		PositiveCCBalances: positiveCC,
		TotalAvailable:     totalAvailable,
		FutureAssigned:     futureAssigned,
		CashOverspending:   comp.cashOverspending[month],
	})

	inflows, err := b.transactionRepo.MonthlyInflow(ctx, budgetID, month)
	if err != nil {
		return nil, err
	}

	view.Breakdown = budget.CalculateRTABreakdown(budget.RTABreakdownInputs{
		ReadyToAssign:                 view.ReadyToAssign,
		InflowThisMonth:               inflows[month],
		PositiveCCBalances:            positiveCC,
		AssignedThisMonth:             comp.assignedByMonth[month],
		CashOverspendingPreviousMonth: comp.cashOverspending[budget.PreviousMonth(month)],
		AssignedInFuture:              futureAssigned,
	})

	return view, nil
}

// CategoryState returns one category's persisted row (nil when absent),
// carryforward and computed available for a month. The assignment and
// move-money usecases build engine inputs from it.
func (b *Builder) CategoryState(ctx context.Context, budgetID, categoryID uuid.UUID, month string) (*entity.BudgetMonth, money.Milliunit, money.Milliunit, error) {
	row, err := b.budgetMonthRepo.FindByCategoryAndMonth(ctx, categoryID, month)
	if err != nil {
		return nil, money.Zero, money.Zero, err
	}

	prev, err := b.compute(ctx, budgetID, budget.PreviousMonth(month))
	if err != nil {
		return nil, money.Zero, money.Zero, err
	}
	carryforward := money.Max(prev.available[categoryID], money.Zero)

	cur, err := b.compute(ctx, budgetID, month)
	if err != nil {
		return nil, money.Zero, money.Zero, err
	}

	return row, carryforward, cur.available[categoryID], nil
}

// compute rolls the budget forward chronologically through the given month.
// Negative balances reset at month boundaries: cash overspending is covered
// through RTA and credit overspending stays visible as card debt, so
// neither carries forward as a negative envelope.
func (b *Builder) compute(ctx context.Context, budgetID uuid.UUID, through string) (*computation, error) {
	categories, err := b.categoryRepo.FindByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	accounts, err := b.accountRepo.FindByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	rows, err := b.budgetMonthRepo.FindByBudgetThrough(ctx, budgetID, through)
	if err != nil {
		return nil, err
	}
	activityByMonth, err := b.transactionRepo.MonthlyActivityByCategory(ctx, budgetID, through)
	if err != nil {
		return nil, err
	}
	cashSpendingByMonth, err := b.transactionRepo.MonthlyCashSpendingByCategory(ctx, budgetID, through)
	if err != nil {
		return nil, err
	}

	assignedByMonth := make(map[string]map[uuid.UUID]money.Milliunit)
	for _, row := range rows {
		if assignedByMonth[row.Month] == nil {
			assignedByMonth[row.Month] = make(map[uuid.UUID]money.Milliunit)
		}
		assignedByMonth[row.Month][row.CategoryID] = row.Assigned
	}

	var credits []creditData
	paymentCategoryByAccount := make(map[uuid.UUID]uuid.UUID)
	for _, cat := range categories {
		if cat.LinkedAccountID != nil {
			paymentCategoryByAccount[*cat.LinkedAccountID] = cat.ID
		}
	}
	for _, acc := range accounts {
		if !acc.Type.IsCredit() {
			continue
		}
		paymentCategoryID, ok := paymentCategoryByAccount[acc.ID]
		if !ok {
			continue
		}
		spending, err := b.transactionRepo.MonthlySpendingOnAccount(ctx, acc.ID, through)
		if err != nil {
			return nil, err
		}
		payments, err := b.transactionRepo.MonthlyPaymentsToAccount(ctx, acc.ID, through)
		if err != nil {
			return nil, err
		}
		credits = append(credits, creditData{paymentCategoryID, spending, payments})
	}

	months := monthUnion(through, assignedByMonth, activityByMonth, credits)

	comp := &computation{
		categories:       categories,
		byID:             make(map[uuid.UUID]*entity.Category, len(categories)),
		available:        make(map[uuid.UUID]money.Milliunit),
		activity:         make(map[uuid.UUID]money.Milliunit),
		assigned:         make(map[uuid.UUID]money.Milliunit),
		cashSpending:     make(map[uuid.UUID]money.Milliunit),
		cashOverspending: make(map[string]money.Milliunit),
		assignedByMonth:  make(map[string]money.Milliunit),
	}
	for _, cat := range categories {
		comp.byID[cat.ID] = cat
	}

	prevAvailable := make(map[uuid.UUID]money.Milliunit)

	for _, m := range months {
		available := make(map[uuid.UUID]money.Milliunit, len(categories))
		activity := make(map[uuid.UUID]money.Milliunit, len(categories))
		assigned := make(map[uuid.UUID]money.Milliunit, len(categories))
		monthAssignedTotal := money.Zero

		// Regular envelopes first: payment category funding depends on
		// their already-updated availables.
		for _, cat := range categories {
			if cat.IsCCPayment() {
				continue
			}
			a := assignedByMonth[m][cat.ID]
			act := activityByMonth[m][cat.ID]
			available[cat.ID] = money.Max(prevAvailable[cat.ID], money.Zero) + a + act
			activity[cat.ID] = act
			assigned[cat.ID] = a
			monthAssignedTotal += a
		}

		for _, cc := range credits {
			funded := budget.CalculateTotalFundedSpending(cc.spending[m], available)
			a := assignedByMonth[m][cc.paymentCategoryID]
			result := budget.CalculateCCPaymentAvailable(budget.CCPaymentInput{
				Carryforward:   money.Max(prevAvailable[cc.paymentCategoryID], money.Zero),
				Assigned:       a,
				FundedSpending: funded,
				Payments:       cc.payments[m],
			})
			available[cc.paymentCategoryID] = result.Available
			activity[cc.paymentCategoryID] = result.Activity
			assigned[cc.paymentCategoryID] = a
			monthAssignedTotal += a
		}

		var overspendingInputs []budget.OverspendingInput
		for _, cat := range categories {
			overspendingInputs = append(overspendingInputs, budget.OverspendingInput{
				CategoryID:      cat.ID,
				Available:       available[cat.ID],
				LinkedAccountID: cat.LinkedAccountID,
				CashSpending:    cashSpendingByMonth[m][cat.ID],
			})
		}
		comp.cashOverspending[m] = budget.CalculateCashOverspending(overspendingInputs)
		comp.assignedByMonth[m] = monthAssignedTotal

		if m == through {
			comp.available = available
			comp.activity = activity
			comp.assigned = assigned
			comp.cashSpending = cashSpendingByMonth[m]
		}
		prevAvailable = available
	}

	if comp.cashSpending == nil {
		comp.cashSpending = make(map[uuid.UUID]money.Milliunit)
	}
	return comp, nil
}

// monthUnion collects every month that carries data, plus the target month,
// sorted ascending. Months after the target are excluded; the fixed-width
// format makes string ordering chronological.
func monthUnion(through string, assigned map[string]map[uuid.UUID]money.Milliunit, activity adapter.MonthlyCategoryAmounts, credits []creditData) []string {
	seen := map[string]bool{through: true}
	for m := range assigned {
		seen[m] = true
	}
	for m := range activity {
		seen[m] = true
	}
	for _, cc := range credits {
		for m := range cc.spending {
			seen[m] = true
		}
		for m := range cc.payments {
			seen[m] = true
		}
	}

	months := make([]string, 0, len(seen))
	for m := range seen {
		if m <= through {
			months = append(months, m)
		}
	}
	sort.Strings(months)
	return months
}
