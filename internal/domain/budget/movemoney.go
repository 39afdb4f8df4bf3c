package budget

import (
	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// MoveMoneyInput describes a request to move assigned funds from one
// category to another within a month. AmountNonFinite is set when the
// boundary conversion rejected the raw display amount.
type MoveMoneyInput struct {
	Amount           money.Milliunit
	AmountNonFinite  bool
	SourceCategoryID uuid.UUID
	TargetCategoryID uuid.UUID
	SourceAvailable  money.Milliunit
}

// MoveMoneyError identifies why a move was rejected.
type MoveMoneyError string

const (
	MoveErrorNonFiniteAmount MoveMoneyError = "non_finite_amount"
	MoveErrorSameCategory    MoveMoneyError = "same_category"
	MoveErrorZeroAmount      MoveMoneyError = "zero_amount"
	MoveErrorNegativeAmount  MoveMoneyError = "negative_amount"
)

// MoveMoneyWarning flags a permitted but notable condition.
type MoveMoneyWarning string

// MoveWarningExceedsAvailable marks a move larger than the source's
// available balance. The move proceeds and overspends the source.
const MoveWarningExceedsAvailable MoveMoneyWarning = "exceeds_available"

// MoveMoneyResult carries the validation outcome and the clamped amount to
// apply. Applying the move (debit source assigned, credit target assigned)
// is the caller's responsibility and must be atomic.
type MoveMoneyResult struct {
	Valid         bool
	Error         MoveMoneyError
	Warning       MoveMoneyWarning
	ClampedAmount money.Milliunit
}

// ValidateMoveMoney validates a move request. Rules apply in order:
// non-finite amount, same category, zero amount, negative amount, then the
// MaxAssigned clamp. Exceeding the source's available is allowed but
// flagged.
func ValidateMoveMoney(in MoveMoneyInput) MoveMoneyResult {
	switch {
	case in.AmountNonFinite:
		return MoveMoneyResult{Error: MoveErrorNonFiniteAmount, ClampedAmount: money.Zero}
	case in.SourceCategoryID == in.TargetCategoryID:
		return MoveMoneyResult{Error: MoveErrorSameCategory, ClampedAmount: money.Zero}
	case in.Amount == money.Zero:
		return MoveMoneyResult{Error: MoveErrorZeroAmount, ClampedAmount: money.Zero}
	case in.Amount < money.Zero:
		return MoveMoneyResult{Error: MoveErrorNegativeAmount, ClampedAmount: money.Zero}
	}

	clamped := money.ClampAssigned(in.Amount)
	if clamped > in.SourceAvailable {
		return MoveMoneyResult{Valid: true, Warning: MoveWarningExceedsAvailable, ClampedAmount: clamped}
	}
	return MoveMoneyResult{Valid: true, ClampedAmount: clamped}
}
