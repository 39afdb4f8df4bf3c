package budget

import (
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// RTABreakdownInputs are the components the Ready-to-Assign waterfall is
// decomposed from, alongside the already-computed RTA itself.
type RTABreakdownInputs struct {
	ReadyToAssign                 money.Milliunit
	InflowThisMonth               money.Milliunit
	PositiveCCBalances            money.Milliunit
	AssignedThisMonth             money.Milliunit
	CashOverspendingPreviousMonth money.Milliunit
	AssignedInFuture              money.Milliunit
}

// RTABreakdown is the human-readable waterfall: what was left over, what
// came in, what was assigned.
type RTABreakdown struct {
	LeftOver                      money.Milliunit
	InflowThisMonth               money.Milliunit
	PositiveCCBalances            money.Milliunit
	AssignedThisMonth             money.Milliunit
	CashOverspendingPreviousMonth money.Milliunit
	AssignedInFuture              money.Milliunit
}

// CalculateRTABreakdown back-solves the leftover-from-previous-month term:
//
//	leftOver = RTA - inflow - positive CC balances + assigned this month + previous month's cash overspending
//
// AssignedInFuture is carried through unmodified. It is informational only
// and deliberately not part of the equation: RTA already subtracted it.
func CalculateRTABreakdown(in RTABreakdownInputs) RTABreakdown {
	leftOver := in.ReadyToAssign - in.InflowThisMonth - in.PositiveCCBalances +
		in.AssignedThisMonth + in.CashOverspendingPreviousMonth
	return RTABreakdown{
		LeftOver:                      leftOver,
		InflowThisMonth:               in.InflowThisMonth,
		PositiveCCBalances:            in.PositiveCCBalances,
		AssignedThisMonth:             in.AssignedThisMonth,
		CashOverspendingPreviousMonth: in.CashOverspendingPreviousMonth,
		AssignedInFuture:              in.AssignedInFuture,
	}
}
