package budget

import (
	"testing"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

func TestComputeAssignment_Dispositions(t *testing.T) {
	cases := []struct {
		name         string
		existing     *ExistingAssignment
		carryforward money.Milliunit
		newAssigned  money.Milliunit
		wantDelta    money.Milliunit
		wantAvail    money.Milliunit
		wantDisp     Disposition
	}{
		{
			name:        "no row and zero assigned skips",
			existing:    nil,
			newAssigned: 0,
			wantDelta:   0,
			wantAvail:   0,
			wantDisp:    DispositionSkip,
		},
		{
			name:         "no row and zero assigned with carryforward still skips",
			existing:     nil,
			carryforward: 25_000,
			newAssigned:  0,
			wantDelta:    0,
			wantAvail:    25_000,
			wantDisp:     DispositionSkip,
		},
		{
			name:        "no row and nonzero assigned creates",
			existing:    nil,
			newAssigned: 50_000,
			wantDelta:   50_000,
			wantAvail:   50_000,
			wantDisp:    DispositionCreate,
		},
		{
			name:         "existing row updates and preserves activity",
			existing:     &ExistingAssignment{Assigned: 100_000, Available: 70_000}, // activity -30_000
			carryforward: 0,
			newAssigned:  150_000,
			wantDelta:    50_000,
			wantAvail:    120_000,
			wantDisp:     DispositionUpdate,
		},
		{
			name:         "zeroing a row with no activity deletes the ghost",
			existing:     &ExistingAssignment{Assigned: 40_000, Available: 55_000}, // carryforward 15_000, activity 0
			carryforward: 15_000,
			newAssigned:  0,
			wantDelta:    -40_000,
			wantAvail:    15_000,
			wantDisp:     DispositionDelete,
		},
		{
			name:         "zeroing a row with activity keeps it",
			existing:     &ExistingAssignment{Assigned: 40_000, Available: 30_000}, // activity -10_000
			carryforward: 0,
			newAssigned:  0,
			wantDelta:    -40_000,
			wantAvail:    -10_000,
			wantDisp:     DispositionUpdate,
		},
		{
			name:        "negative assignment is carried through",
			existing:    &ExistingAssignment{Assigned: 10_000, Available: 10_000},
			newAssigned: -5_000,
			wantDelta:   -15_000,
			wantAvail:   -5_000,
			wantDisp:    DispositionUpdate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeAssignment(AssignmentInput{
				Existing:     tc.existing,
				Carryforward: tc.carryforward,
				NewAssigned:  tc.newAssigned,
			})
			if got.Delta != tc.wantDelta {
				t.Errorf("Delta = %d, want %d", got.Delta, tc.wantDelta)
			}
			if got.NewAvailable != tc.wantAvail {
				t.Errorf("NewAvailable = %d, want %d", got.NewAvailable, tc.wantAvail)
			}
			if got.Disposition != tc.wantDisp {
				t.Errorf("Disposition = %q, want %q", got.Disposition, tc.wantDisp)
			}
		})
	}
}

// available = carryforward + assigned + activity must hold for any result.
func TestComputeAssignment_AvailableConsistency(t *testing.T) {
	carryforwards := []money.Milliunit{-20_000, 0, 35_000}
	activities := []money.Milliunit{-50_000, 0, 12_500}
	assigns := []money.Milliunit{-10_000, 0, 80_000}

	for _, cf := range carryforwards {
		for _, act := range activities {
			for _, oldAssigned := range assigns {
				for _, newAssigned := range assigns {
					existing := &ExistingAssignment{
						Assigned:  oldAssigned,
						Available: cf + oldAssigned + act,
					}
					got := ComputeAssignment(AssignmentInput{
						Existing:     existing,
						Carryforward: cf,
						NewAssigned:  newAssigned,
					})
					want := cf + newAssigned + act
					if got.NewAvailable != want {
						t.Fatalf("cf=%d act=%d old=%d new=%d: NewAvailable = %d, want %d",
							cf, act, oldAssigned, newAssigned, got.NewAvailable, want)
					}
				}
			}
		}
	}
}

// A second call with the same amount, fed the first call's result, is a
// no-op.
func TestComputeAssignment_Idempotent(t *testing.T) {
	first := ComputeAssignment(AssignmentInput{
		Existing:     &ExistingAssignment{Assigned: 20_000, Available: 5_000},
		Carryforward: 10_000,
		NewAssigned:  75_000,
	})

	second := ComputeAssignment(AssignmentInput{
		Existing:     &ExistingAssignment{Assigned: first.NewAssigned, Available: first.NewAvailable},
		Carryforward: 10_000,
		NewAssigned:  75_000,
	})

	if second.Delta != 0 {
		t.Errorf("second Delta = %d, want 0", second.Delta)
	}
	if second.NewAvailable != first.NewAvailable {
		t.Errorf("second NewAvailable = %d, want %d", second.NewAvailable, first.NewAvailable)
	}
}

func TestValidateAssignedValue(t *testing.T) {
	t.Run("finite value passes through", func(t *testing.T) {
		got := ValidateAssignedValue(42_000, true)
		if !got.Valid || got.Value != 42_000 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("out of range clamps and stays valid", func(t *testing.T) {
		got := ValidateAssignedValue(money.MaxAssigned+1, true)
		if !got.Valid || got.Value != money.MaxAssigned {
			t.Errorf("got %+v", got)
		}
		got = ValidateAssignedValue(-money.MaxAssigned-1, true)
		if !got.Valid || got.Value != -money.MaxAssigned {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("non-finite clamps to zero and is invalid", func(t *testing.T) {
		got := ValidateAssignedValue(99, false)
		if got.Valid || got.Value != money.Zero {
			t.Errorf("got %+v", got)
		}
	})
}
