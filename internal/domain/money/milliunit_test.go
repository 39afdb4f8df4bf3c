package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFromDecimal(t *testing.T) {
	cases := []struct {
		in  string
		out Milliunit
	}{
		{"0", 0},
		{"1", 1000},
		{"1500.75", 1500750},
		{"-1500.75", -1500750},
		{"0.01", 10},
		{"-0.01", -10},
		{"0.0005", 1},    // half rounds away from zero
		{"-0.0005", -1},  // symmetric for negatives
		{"0.0004", 0},
		{"12.3456", 12346},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tc.in, err)
		}
		if got := FromDecimal(d); got != tc.out {
			t.Errorf("FromDecimal(%s) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestFromFloat_NonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, ok := FromFloat(f)
		if ok {
			t.Errorf("FromFloat(%v) reported ok", f)
		}
		if got != Zero {
			t.Errorf("FromFloat(%v) = %d, want Zero", f, got)
		}
	}
}

// Every whole-cent amount must survive a display -> milliunit -> display
// round trip exactly.
func TestRoundTrip_CentPrecision(t *testing.T) {
	for cents := int64(-250000); cents <= 250000; cents += 37 {
		display := decimal.New(cents, -2)
		m := FromDecimal(display)
		if !m.ToDecimal().Equal(display) {
			t.Fatalf("round trip failed for %s: got %s", display, m.ToDecimal())
		}
	}
}

func TestToFloat(t *testing.T) {
	if got := Milliunit(1500750).ToFloat(); got != 1500.75 {
		t.Errorf("ToFloat() = %v, want 1500.75", got)
	}
}

func TestClampAssigned(t *testing.T) {
	cases := []struct {
		in  Milliunit
		out Milliunit
	}{
		{0, 0},
		{MaxAssigned, MaxAssigned},
		{MaxAssigned + 1, MaxAssigned},
		{-MaxAssigned - 1, -MaxAssigned},
		{12345, 12345},
	}
	for _, tc := range cases {
		if got := ClampAssigned(tc.in); got != tc.out {
			t.Errorf("ClampAssigned(%d) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, -5) != -5 || Max(3, -5) != 3 {
		t.Error("Min/Max ordering wrong")
	}
	if Milliunit(-500).Abs() != 500 || Milliunit(500).Abs() != 500 {
		t.Error("Abs wrong")
	}
	if !Zero.IsZero() || Zero.IsNegative() || !Milliunit(-1).IsNegative() {
		t.Error("predicates wrong")
	}
}
