package budget

import "testing"

func TestCalculateReadyToAssign(t *testing.T) {
	cases := []struct {
		name string
		in   RTAInputs
		want int64
	}{
		{
			name: "baseline scenario",
			in: RTAInputs{
				CashBalance:        1_000_000,
				PositiveCCBalances: 0,
				TotalAvailable:     400_000,
				FutureAssigned:     0,
				CashOverspending:   50_000,
			},
			want: 650_000,
		},
		{
			name: "future assignments are already earmarked",
			in: RTAInputs{
				CashBalance:    500_000,
				TotalAvailable: 100_000,
				FutureAssigned: 150_000,
			},
			want: 250_000,
		},
		{
			name: "overpaid card counts like cash",
			in: RTAInputs{
				CashBalance:        200_000,
				PositiveCCBalances: 30_000,
				TotalAvailable:     100_000,
			},
			want: 130_000,
		},
		{
			name: "over-assigning drives RTA negative",
			in: RTAInputs{
				CashBalance:    100_000,
				TotalAvailable: 180_000,
			},
			want: -80_000,
		},
		{
			name: "empty budget",
			in:   RTAInputs{},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateReadyToAssign(tc.in); int64(got) != tc.want {
				t.Errorf("CalculateReadyToAssign() = %d, want %d", got, tc.want)
			}
		})
	}
}
