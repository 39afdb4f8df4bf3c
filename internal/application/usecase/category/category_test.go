package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter/adaptertest"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

func seed(t *testing.T) (*adaptertest.MemoryStore, uuid.UUID, uuid.UUID, *entity.CategoryGroup) {
	t.Helper()
	store := adaptertest.NewMemoryStore()
	user := entity.NewUser("sam@example.com", "Sam", "hash")
	store.Users = append(store.Users, user)
	b := entity.NewBudget(user.ID, "My Budget", "USD")
	store.Budgets = append(store.Budgets, b)
	group := entity.NewCategoryGroup(b.ID, "Bills", 0)
	store.Groups = append(store.Groups, group)
	return store, user.ID, b.ID, group
}

func TestCreateCategory(t *testing.T) {
	store, userID, budgetID, group := seed(t)
	uc := NewCreateCategoryUseCase(store.BudgetRepo(), store.CategoryRepo())
	ctx := context.Background()

	out, err := uc.Execute(ctx, CreateCategoryInput{
		UserID:   userID,
		BudgetID: budgetID,
		GroupID:  group.ID,
		Name:     "Groceries",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Category.GroupID != group.ID {
		t.Errorf("group = %v, want %v", out.Category.GroupID, group.ID)
	}

	t.Run("duplicate name in group", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			BudgetID: budgetID,
			GroupID:  group.ID,
			Name:     "Groceries",
		})
		if !errors.Is(err, domainerror.ErrCategoryNameTaken) {
			t.Errorf("expected ErrCategoryNameTaken, got %v", err)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			BudgetID: budgetID,
			GroupID:  uuid.New(),
			Name:     "Other",
		})
		if !errors.Is(err, domainerror.ErrCategoryGroupNotFound) {
			t.Errorf("expected ErrCategoryGroupNotFound, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:   userID,
			BudgetID: budgetID,
			GroupID:  group.ID,
			Name:     "",
		})
		if !errors.Is(err, domainerror.ErrInvalidCategoryName) {
			t.Errorf("expected ErrInvalidCategoryName, got %v", err)
		}
	})
}

func TestDeleteCategory_CCPaymentGuard(t *testing.T) {
	store, userID, budgetID, group := seed(t)
	uc := NewDeleteCategoryUseCase(store.BudgetRepo(), store.CategoryRepo(), store.Cache())
	ctx := context.Background()

	card := entity.NewAccount(budgetID, "Visa", entity.AccountTypeCredit, "")
	store.Accounts = append(store.Accounts, card)
	payment := entity.NewCCPaymentCategory(budgetID, group.ID, card)
	regular := entity.NewCategory(budgetID, group.ID, "Groceries", 0)
	store.Categories = append(store.Categories, payment, regular)

	if err := uc.Execute(ctx, DeleteCategoryInput{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: payment.ID,
	}); !errors.Is(err, domainerror.ErrCannotDeleteCCPaymentCategory) {
		t.Errorf("expected ErrCannotDeleteCCPaymentCategory, got %v", err)
	}

	if err := uc.Execute(ctx, DeleteCategoryInput{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: regular.ID,
	}); err != nil {
		t.Fatalf("deleting a regular category failed: %v", err)
	}
	if len(store.Categories) != 1 {
		t.Errorf("expected only the payment category left, got %d", len(store.Categories))
	}
}

func TestUpdateCategory_CCPaymentRenameGuard(t *testing.T) {
	store, userID, budgetID, group := seed(t)
	uc := NewUpdateCategoryUseCase(store.BudgetRepo(), store.CategoryRepo())
	ctx := context.Background()

	card := entity.NewAccount(budgetID, "Visa", entity.AccountTypeCredit, "")
	store.Accounts = append(store.Accounts, card)
	payment := entity.NewCCPaymentCategory(budgetID, group.ID, card)
	store.Categories = append(store.Categories, payment)

	name := "Renamed"
	_, err := uc.Execute(ctx, UpdateCategoryInput{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: payment.ID,
		Name:       &name,
	})
	if !errors.Is(err, domainerror.ErrCannotDeleteCCPaymentCategory) {
		t.Errorf("expected rename guard, got %v", err)
	}

	// Hiding is still allowed.
	hidden := true
	out, err := uc.Execute(ctx, UpdateCategoryInput{
		UserID:     userID,
		BudgetID:   budgetID,
		CategoryID: payment.ID,
		Hidden:     &hidden,
	})
	if err != nil {
		t.Fatalf("hide failed: %v", err)
	}
	if !out.Category.Hidden {
		t.Error("expected category hidden")
	}
}

func TestListCategories_GroupedAndSorted(t *testing.T) {
	store, userID, budgetID, group := seed(t)
	uc := NewListCategoriesUseCase(store.BudgetRepo(), store.CategoryRepo())
	ctx := context.Background()

	second := entity.NewCategoryGroup(budgetID, "Fun", 1)
	store.Groups = append(store.Groups, second)

	b := entity.NewCategory(budgetID, group.ID, "B", 1)
	a := entity.NewCategory(budgetID, group.ID, "A", 0)
	hidden := entity.NewCategory(budgetID, second.ID, "Hidden", 0)
	hidden.Hidden = true
	store.Categories = append(store.Categories, b, a, hidden)

	out, err := uc.Execute(ctx, ListCategoriesInput{UserID: userID, BudgetID: budgetID})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(out.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out.Groups))
	}
	bills := out.Groups[0]
	if bills.Group.Name != "Bills" || len(bills.Categories) != 2 {
		t.Fatalf("unexpected first group %q with %d categories", bills.Group.Name, len(bills.Categories))
	}
	if bills.Categories[0].Name != "A" {
		t.Errorf("expected sort order to put A first, got %q", bills.Categories[0].Name)
	}
	if len(out.Groups[1].Categories) != 0 {
		t.Errorf("expected hidden category filtered out")
	}

	withHidden, err := uc.Execute(ctx, ListCategoriesInput{UserID: userID, BudgetID: budgetID, IncludeHidden: true})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(withHidden.Groups[1].Categories) != 1 {
		t.Errorf("expected hidden category included")
	}
}
