package budget

import (
	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// CategorySpending is one category's net spending on a single credit
// account for one month.
type CategorySpending struct {
	CategoryID uuid.UUID
	Outflow    money.Milliunit
	Inflow     money.Milliunit
}

// Net returns outflow minus inflow. Negative means a net refund.
func (s CategorySpending) Net() money.Milliunit {
	return s.Outflow - s.Inflow
}

// CalculateFundedAmount reconstructs how much of a category's net credit
// spending was backed by assigned money. currentAvailable is the category's
// available balance after the spending was recorded, so the pre-spend
// balance is recovered by adding the spending back. The funded portion can
// neither exceed what was available before the spend nor the spend itself.
//
// A net refund (netSpending <= 0) flows back to the payment category in
// full and is returned unchanged.
func CalculateFundedAmount(netSpending, currentAvailable money.Milliunit) money.Milliunit {
	if netSpending <= money.Zero {
		return netSpending
	}
	availableBefore := currentAvailable + netSpending
	return money.Min(money.Max(money.Zero, availableBefore), netSpending)
}

// CalculateTotalFundedSpending sums funded amounts over all per-category
// spending records for one credit account. Categories missing from the
// availables map count as having zero available.
func CalculateTotalFundedSpending(spending []CategorySpending, availables map[uuid.UUID]money.Milliunit) money.Milliunit {
	total := money.Zero
	for _, s := range spending {
		total += CalculateFundedAmount(s.Net(), availables[s.CategoryID])
	}
	return total
}

// CCPaymentInput is the state needed to compute a credit card payment
// category's month: funded spending moves money into the category, payments
// on the card move it out.
type CCPaymentInput struct {
	Carryforward   money.Milliunit
	Assigned       money.Milliunit
	FundedSpending money.Milliunit
	Payments       money.Milliunit
}

// CCPaymentResult is the payment category's computed month.
type CCPaymentResult struct {
	Activity       money.Milliunit
	Available      money.Milliunit
	FundedSpending money.Milliunit
}

// CalculateCCPaymentAvailable computes the payment category's activity and
// available balance. Funded spending minus payments keeps card debt visible
// as a liability without double-counting the categories that funded it.
func CalculateCCPaymentAvailable(in CCPaymentInput) CCPaymentResult {
	activity := in.FundedSpending - in.Payments
	return CCPaymentResult{
		Activity:       activity,
		Available:      in.Carryforward + in.Assigned + activity,
		FundedSpending: in.FundedSpending,
	}
}
