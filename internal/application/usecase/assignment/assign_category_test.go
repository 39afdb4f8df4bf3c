package assignment

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter/adaptertest"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/usecase/budgetmonth"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

type env struct {
	store     *adaptertest.MemoryStore
	userID    uuid.UUID
	budgetID  uuid.UUID
	groceries uuid.UUID
	rent      uuid.UUID
	assign    *AssignCategoryUseCase
	move      *MoveMoneyUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := adaptertest.NewMemoryStore()

	user := entity.NewUser("sam@example.com", "Sam", "hash")
	store.Users = append(store.Users, user)
	b := entity.NewBudget(user.ID, "My Budget", "USD")
	store.Budgets = append(store.Budgets, b)

	checking := entity.NewAccount(b.ID, "Checking", entity.AccountTypeChecking, "")
	store.Accounts = append(store.Accounts, checking)

	group := entity.NewCategoryGroup(b.ID, "Bills", 0)
	store.Groups = append(store.Groups, group)
	groceries := entity.NewCategory(b.ID, group.ID, "Groceries", 0)
	rent := entity.NewCategory(b.ID, group.ID, "Rent", 1)
	store.Categories = append(store.Categories, groceries, rent)

	income, _ := time.Parse("2006-01-02", "2025-03-01")
	store.Transactions = append(store.Transactions,
		entity.NewTransaction(b.ID, checking.ID, nil, income, money.Milliunit(2_000_000), "", ""))

	builder := budgetmonth.NewBuilder(
		store.AccountRepo(), store.CategoryRepo(),
		store.BudgetMonthRepo(), store.TransactionRepo(),
		budget.FixedClock("2025-03"),
	)

	return &env{
		store:     store,
		userID:    user.ID,
		budgetID:  b.ID,
		groceries: groceries.ID,
		rent:      rent.ID,
		assign: NewAssignCategoryUseCase(
			store.BudgetRepo(), store.CategoryRepo(), store.BudgetMonthRepo(),
			builder, store.Cache()),
		move: NewMoveMoneyUseCase(
			store.BudgetRepo(), store.CategoryRepo(), store.BudgetMonthRepo(),
			builder, store.Cache()),
	}
}

func TestAssignCategory_CreatesRow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	out, err := e.assign.Execute(ctx, AssignCategoryInput{
		UserID:     e.userID,
		BudgetID:   e.budgetID,
		CategoryID: e.groceries,
		Month:      "2025-03",
		Amount:     500,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Assigned != money.Milliunit(500_000) {
		t.Errorf("assigned = %v, want 500000", out.Assigned)
	}
	if out.Available != money.Milliunit(500_000) {
		t.Errorf("available = %v, want 500000", out.Available)
	}
	if len(e.store.BudgetMonths) != 1 {
		t.Fatalf("expected 1 budget month row, got %d", len(e.store.BudgetMonths))
	}
	if e.store.Invalidated != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", e.store.Invalidated)
	}
}

func TestAssignCategory_ZeroOnMissingRowIsSkip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	out, err := e.assign.Execute(ctx, AssignCategoryInput{
		UserID:     e.userID,
		BudgetID:   e.budgetID,
		CategoryID: e.groceries,
		Month:      "2025-03",
		Amount:     0,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(e.store.BudgetMonths) != 0 {
		t.Errorf("expected no rows created, got %d", len(e.store.BudgetMonths))
	}
	if e.store.Invalidated != 0 {
		t.Errorf("expected no cache invalidation on skip, got %d", e.store.Invalidated)
	}
	if out.Delta != money.Zero {
		t.Errorf("delta = %v, want 0", out.Delta)
	}
}

func TestAssignCategory_ZeroingRemovesGhostRow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, amount := range []float64{500, 0} {
		if _, err := e.assign.Execute(ctx, AssignCategoryInput{
			UserID:     e.userID,
			BudgetID:   e.budgetID,
			CategoryID: e.groceries,
			Month:      "2025-03",
			Amount:     amount,
		}); err != nil {
			t.Fatalf("Execute(%v) returned error: %v", amount, err)
		}
	}
	if len(e.store.BudgetMonths) != 0 {
		t.Errorf("expected ghost row deleted, got %d rows", len(e.store.BudgetMonths))
	}
}

func TestAssignCategory_NonFiniteAmountTreatedAsZero(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	out, err := e.assign.Execute(ctx, AssignCategoryInput{
		UserID:     e.userID,
		BudgetID:   e.budgetID,
		CategoryID: e.groceries,
		Month:      "2025-03",
		Amount:     math.NaN(),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Assigned != money.Zero {
		t.Errorf("assigned = %v, want 0", out.Assigned)
	}
	if len(e.store.BudgetMonths) != 0 {
		t.Errorf("expected no rows created, got %d", len(e.store.BudgetMonths))
	}
}

func TestAssignCategory_RejectsBadMonthAndForeignBudget(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.assign.Execute(ctx, AssignCategoryInput{
		UserID:     e.userID,
		BudgetID:   e.budgetID,
		CategoryID: e.groceries,
		Month:      "March 2025",
		Amount:     100,
	})
	if !errors.Is(err, domainerror.ErrInvalidMonth) {
		t.Errorf("expected ErrInvalidMonth, got %v", err)
	}

	_, err = e.assign.Execute(ctx, AssignCategoryInput{
		UserID:     uuid.New(),
		BudgetID:   e.budgetID,
		CategoryID: e.groceries,
		Month:      "2025-03",
		Amount:     100,
	})
	if !errors.Is(err, domainerror.ErrNotAuthorizedForBudget) {
		t.Errorf("expected ErrNotAuthorizedForBudget, got %v", err)
	}
}

func TestMoveMoney_MovesBetweenCategories(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.assign.Execute(ctx, AssignCategoryInput{
		UserID: e.userID, BudgetID: e.budgetID, CategoryID: e.groceries,
		Month: "2025-03", Amount: 500,
	}); err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}

	out, err := e.move.Execute(ctx, MoveMoneyInput{
		UserID:           e.userID,
		BudgetID:         e.budgetID,
		SourceCategoryID: e.groceries,
		TargetCategoryID: e.rent,
		Month:            "2025-03",
		Amount:           200,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.SourceAssigned != money.Milliunit(300_000) {
		t.Errorf("source assigned = %v, want 300000", out.SourceAssigned)
	}
	if out.TargetAssigned != money.Milliunit(200_000) {
		t.Errorf("target assigned = %v, want 200000", out.TargetAssigned)
	}
	if out.Warning != "" {
		t.Errorf("unexpected warning %q", out.Warning)
	}

	// Total assigned is conserved.
	total := money.Zero
	for _, row := range e.store.BudgetMonths {
		total += row.Assigned
	}
	if total != money.Milliunit(500_000) {
		t.Errorf("total assigned = %v, want 500000", total)
	}
}

func TestMoveMoney_ExceedingAvailableWarns(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.assign.Execute(ctx, AssignCategoryInput{
		UserID: e.userID, BudgetID: e.budgetID, CategoryID: e.groceries,
		Month: "2025-03", Amount: 100,
	}); err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}

	out, err := e.move.Execute(ctx, MoveMoneyInput{
		UserID:           e.userID,
		BudgetID:         e.budgetID,
		SourceCategoryID: e.groceries,
		TargetCategoryID: e.rent,
		Month:            "2025-03",
		Amount:           250,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Warning != budget.MoveWarningExceedsAvailable {
		t.Errorf("warning = %q, want exceeds_available", out.Warning)
	}
	if out.SourceAvailable != money.Milliunit(-150_000) {
		t.Errorf("source available = %v, want -150000", out.SourceAvailable)
	}
}

func TestMoveMoney_Rejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		target uuid.UUID
		amount float64
	}{
		{"same category", e.groceries, 100},
		{"zero amount", e.rent, 0},
		{"negative amount", e.rent, -50},
		{"non-finite amount", e.rent, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.move.Execute(ctx, MoveMoneyInput{
				UserID:           e.userID,
				BudgetID:         e.budgetID,
				SourceCategoryID: e.groceries,
				TargetCategoryID: tt.target,
				Month:            "2025-03",
				Amount:           tt.amount,
			})
			if !errors.Is(err, domainerror.ErrInvalidAssignedAmount) {
				t.Errorf("expected ErrInvalidAssignedAmount, got %v", err)
			}
		})
	}
	if len(e.store.BudgetMonths) != 0 {
		t.Errorf("expected no rows written by rejected moves, got %d", len(e.store.BudgetMonths))
	}
}
