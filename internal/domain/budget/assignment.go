package budget

import (
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// ExistingAssignment is the currently persisted budget row for one
// (category, month) pair, or absent when no row exists yet.
type ExistingAssignment struct {
	Assigned  money.Milliunit
	Available money.Milliunit
}

// AssignmentInput describes a user setting a category's assigned amount for
// a month. Carryforward is the previous month's available, after the
// negative-balance reset.
type AssignmentInput struct {
	Existing     *ExistingAssignment
	Carryforward money.Milliunit
	NewAssigned  money.Milliunit
}

// Disposition tells the repository what to do with the budget row.
type Disposition string

const (
	// DispositionCreate inserts a new row.
	DispositionCreate Disposition = "create"
	// DispositionUpdate rewrites the existing row.
	DispositionUpdate Disposition = "update"
	// DispositionDelete removes a row that no longer carries state.
	DispositionDelete Disposition = "delete"
	// DispositionSkip means no row exists and none is needed.
	DispositionSkip Disposition = "skip"
)

// AssignmentResult is the complete, ready-to-apply effect of an assignment.
// NewAvailable always satisfies carryforward + assigned + activity.
type AssignmentResult struct {
	Delta        money.Milliunit
	NewAssigned  money.Milliunit
	NewAvailable money.Milliunit
	Disposition  Disposition
}

// ComputeAssignment derives the new available balance and row disposition
// for an assignment change. The month's already-recorded activity is
// preserved: only the assigned component changes.
//
// Rows that would hold no independent state (zero assigned, available equal
// to the carryforward) are marked for deletion so the budget_months table
// stays sparse. Setting zero on a missing row is a no-op.
func ComputeAssignment(in AssignmentInput) AssignmentResult {
	var currentAssigned, activity money.Milliunit
	if in.Existing != nil {
		currentAssigned = in.Existing.Assigned
		activity = in.Existing.Available - in.Existing.Assigned - in.Carryforward
	}

	newAvailable := in.Carryforward + in.NewAssigned + activity

	result := AssignmentResult{
		Delta:        in.NewAssigned - currentAssigned,
		NewAssigned:  in.NewAssigned,
		NewAvailable: newAvailable,
	}

	switch {
	case in.Existing == nil && in.NewAssigned == money.Zero:
		result.Disposition = DispositionSkip
	case in.Existing == nil:
		result.Disposition = DispositionCreate
	case in.NewAssigned == money.Zero && newAvailable == in.Carryforward:
		result.Disposition = DispositionDelete
	default:
		result.Disposition = DispositionUpdate
	}

	return result
}

// AssignedValue is the outcome of validating a raw assigned amount.
type AssignedValue struct {
	Value money.Milliunit
	Valid bool
}

// ValidateAssignedValue normalizes a boundary-converted amount. A value the
// conversion rejected as non-finite clamps to zero and is flagged invalid;
// finite out-of-range values clamp to the assignable maximum and stay valid.
func ValidateAssignedValue(value money.Milliunit, finite bool) AssignedValue {
	if !finite {
		return AssignedValue{Value: money.Zero, Valid: false}
	}
	return AssignedValue{Value: money.ClampAssigned(value), Valid: true}
}
