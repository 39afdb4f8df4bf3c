package budget

import (
	"testing"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

func TestValidateMoveMoney(t *testing.T) {
	source := uuid.New()
	target := uuid.New()

	cases := []struct {
		name        string
		in          MoveMoneyInput
		wantValid   bool
		wantError   MoveMoneyError
		wantWarning MoveMoneyWarning
		wantAmount  money.Milliunit
	}{
		{
			name:       "non-finite amount rejected first",
			in:         MoveMoneyInput{AmountNonFinite: true, SourceCategoryID: source, TargetCategoryID: source},
			wantError:  MoveErrorNonFiniteAmount,
			wantAmount: money.Zero,
		},
		{
			name:       "same category rejected",
			in:         MoveMoneyInput{Amount: 100, SourceCategoryID: source, TargetCategoryID: source, SourceAvailable: 1_000},
			wantError:  MoveErrorSameCategory,
			wantAmount: money.Zero,
		},
		{
			name:       "zero amount rejected",
			in:         MoveMoneyInput{Amount: 0, SourceCategoryID: source, TargetCategoryID: target, SourceAvailable: 1_000},
			wantError:  MoveErrorZeroAmount,
			wantAmount: money.Zero,
		},
		{
			name:       "negative amount rejected",
			in:         MoveMoneyInput{Amount: -100, SourceCategoryID: source, TargetCategoryID: target, SourceAvailable: 1_000},
			wantError:  MoveErrorNegativeAmount,
			wantAmount: money.Zero,
		},
		{
			name:       "amount within available is valid",
			in:         MoveMoneyInput{Amount: 500, SourceCategoryID: source, TargetCategoryID: target, SourceAvailable: 1_000},
			wantValid:  true,
			wantAmount: 500,
		},
		{
			name:        "amount exceeding available warns but proceeds",
			in:          MoveMoneyInput{Amount: 2_000, SourceCategoryID: source, TargetCategoryID: target, SourceAvailable: 1_000},
			wantValid:   true,
			wantWarning: MoveWarningExceedsAvailable,
			wantAmount:  2_000,
		},
		{
			name:        "amount above max is clamped",
			in:          MoveMoneyInput{Amount: money.MaxAssigned + 500, SourceCategoryID: source, TargetCategoryID: target, SourceAvailable: 1_000},
			wantValid:   true,
			wantWarning: MoveWarningExceedsAvailable,
			wantAmount:  money.MaxAssigned,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateMoveMoney(tc.in)
			if got.Valid != tc.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tc.wantValid)
			}
			if got.Error != tc.wantError {
				t.Errorf("Error = %q, want %q", got.Error, tc.wantError)
			}
			if got.Warning != tc.wantWarning {
				t.Errorf("Warning = %q, want %q", got.Warning, tc.wantWarning)
			}
			if got.ClampedAmount != tc.wantAmount {
				t.Errorf("ClampedAmount = %d, want %d", got.ClampedAmount, tc.wantAmount)
			}
		})
	}
}

// Moving a valid amount conserves the total assigned across categories: the
// source loses exactly what the target gains.
func TestMoveMoney_Conservation(t *testing.T) {
	source := uuid.New()
	target := uuid.New()

	sourceAssigned := money.Milliunit(80_000)
	targetAssigned := money.Milliunit(20_000)
	amount := money.Milliunit(30_000)

	result := ValidateMoveMoney(MoveMoneyInput{
		Amount:           amount,
		SourceCategoryID: source,
		TargetCategoryID: target,
		SourceAvailable:  80_000,
	})
	if !result.Valid {
		t.Fatalf("move rejected: %+v", result)
	}

	newSource := sourceAssigned - result.ClampedAmount
	newTarget := targetAssigned + result.ClampedAmount

	if newSource != 50_000 || newTarget != 50_000 {
		t.Errorf("assigned after move = (%d, %d), want (50000, 50000)", newSource, newTarget)
	}
	if newSource+newTarget != sourceAssigned+targetAssigned {
		t.Errorf("total assigned changed: %d -> %d", sourceAssigned+targetAssigned, newSource+newTarget)
	}
}
