package budget

import "testing"

func TestCalculateRTABreakdown(t *testing.T) {
	in := RTABreakdownInputs{
		ReadyToAssign:                 650_000,
		InflowThisMonth:               300_000,
		PositiveCCBalances:            20_000,
		AssignedThisMonth:             120_000,
		CashOverspendingPreviousMonth: 10_000,
		AssignedInFuture:              75_000,
	}

	got := CalculateRTABreakdown(in)

	// 650000 - 300000 - 20000 + 120000 + 10000
	if got.LeftOver != 460_000 {
		t.Errorf("LeftOver = %d, want 460000", got.LeftOver)
	}
	if got.AssignedInFuture != 75_000 {
		t.Errorf("AssignedInFuture = %d, want 75000 (carried through unchanged)", got.AssignedInFuture)
	}

	// Recomposing the waterfall must reproduce RTA. AssignedInFuture stays
	// out of the equation.
	recomposed := got.LeftOver + got.InflowThisMonth + got.PositiveCCBalances -
		got.AssignedThisMonth - got.CashOverspendingPreviousMonth
	if recomposed != in.ReadyToAssign {
		t.Errorf("recomposed RTA = %d, want %d", recomposed, in.ReadyToAssign)
	}
}

func TestCalculateRTABreakdown_Zeroes(t *testing.T) {
	got := CalculateRTABreakdown(RTABreakdownInputs{ReadyToAssign: 42_000})
	if got.LeftOver != 42_000 {
		t.Errorf("LeftOver = %d, want 42000", got.LeftOver)
	}
}
