package budget

import (
	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// OverspendingInput is one category's state for classification.
// CashSpending is the month's net outflow from non-credit accounts,
// clamped to be non-negative.
type OverspendingInput struct {
	CategoryID      uuid.UUID
	Available       money.Milliunit
	LinkedAccountID *uuid.UUID
	CashSpending    money.Milliunit
}

// OverspendingKind classifies a negative available balance.
type OverspendingKind string

const (
	// OverspendingNone means the category is not overspent.
	OverspendingNone OverspendingKind = ""
	// OverspendingCash is overspending backed by money that already left
	// cash accounts. The urgent case: it must be covered this month.
	OverspendingCash OverspendingKind = "cash"
	// OverspendingCredit is overspending that became card debt.
	OverspendingCredit OverspendingKind = "credit"
)

// ClassifyOverspending determines whether a category's negative available is
// cash or credit overspending. Credit card payment categories always
// classify as credit. For everything else, any cash-sourced portion wins.
func ClassifyOverspending(in OverspendingInput) OverspendingKind {
	if in.Available >= money.Zero {
		return OverspendingNone
	}
	if in.LinkedAccountID != nil {
		return OverspendingCredit
	}
	totalOverspent := in.Available.Abs()
	if money.Min(totalOverspent, in.CashSpending) > money.Zero {
		return OverspendingCash
	}
	return OverspendingCredit
}

// CalculateCashOverspending sums the cash-sourced portion of overspending
// across categories. Credit card payment categories are excluded: their
// shortfall is unfunded card debt, not cash leakage.
func CalculateCashOverspending(categories []OverspendingInput) money.Milliunit {
	total := money.Zero
	for _, c := range categories {
		if c.Available >= money.Zero || c.LinkedAccountID != nil {
			continue
		}
		total += money.Min(c.Available.Abs(), c.CashSpending)
	}
	return total
}
