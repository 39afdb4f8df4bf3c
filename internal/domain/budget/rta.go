package budget

import (
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// RTAInputs are the flat aggregates Ready-to-Assign is computed from. They
// carry no identity: the repository layer assembles them fresh per request,
// restricted to data up to the viewed month when that month is in the past.
type RTAInputs struct {
	// CashBalance is the total balance across non-credit accounts.
	CashBalance money.Milliunit
	// PositiveCCBalances sums credit account balances above zero
	// (overpaid cards behave like cash).
	PositiveCCBalances money.Milliunit
	// TotalAvailable sums every category's available for the viewed month,
	// negatives included.
	TotalAvailable money.Milliunit
	// FutureAssigned is money already committed to months after the viewed
	// month.
	FutureAssigned money.Milliunit
	// CashOverspending is added back: it already reduced TotalAvailable but
	// still represents money that needs to be covered.
	CashOverspending money.Milliunit
}

// CalculateReadyToAssign computes the headline unallocated-money figure:
//
//	RTA = cash + positive CC balances - total available - future assigned + cash overspending
func CalculateReadyToAssign(in RTAInputs) money.Milliunit {
	return in.CashBalance + in.PositiveCCBalances - in.TotalAvailable - in.FutureAssigned + in.CashOverspending
}
