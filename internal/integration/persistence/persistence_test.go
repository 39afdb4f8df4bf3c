package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.BudgetModel{},
		&model.AccountModel{},
		&model.CategoryGroupModel{},
		&model.CategoryModel{},
		&model.BudgetMonthModel{},
		&model.TransactionModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type dbFixture struct {
	db       *gorm.DB
	budgetID uuid.UUID
	checking *entity.Account
	card     *entity.Account
	grocery  *entity.Category
}

func newDBFixture(t *testing.T) *dbFixture {
	t.Helper()

	db := openTestDB(t)
	ctx := context.Background()

	user := entity.NewUser("test@example.com", "Test", "hash")
	if err := NewUserRepository(db).Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	bgt := entity.NewBudget(user.ID, "Household", "USD")
	if err := NewBudgetRepository(db).Create(ctx, bgt); err != nil {
		t.Fatalf("create budget: %v", err)
	}

	accountRepo := NewAccountRepository(db)
	checking := entity.NewAccount(bgt.ID, "Checking", entity.AccountTypeChecking, "")
	if err := accountRepo.CreateWithSetup(ctx, checking, nil, nil); err != nil {
		t.Fatalf("create checking: %v", err)
	}
	card := entity.NewAccount(bgt.ID, "Visa", entity.AccountTypeCredit, "")
	if err := accountRepo.CreateWithSetup(ctx, card, nil, nil); err != nil {
		t.Fatalf("create card: %v", err)
	}

	categoryRepo := NewCategoryRepository(db)
	group := entity.NewCategoryGroup(bgt.ID, "Everyday", 0)
	if err := categoryRepo.CreateGroup(ctx, group); err != nil {
		t.Fatalf("create group: %v", err)
	}
	grocery := entity.NewCategory(bgt.ID, group.ID, "Groceries", 0)
	if err := categoryRepo.Create(ctx, grocery); err != nil {
		t.Fatalf("create category: %v", err)
	}

	return &dbFixture{
		db:       db,
		budgetID: bgt.ID,
		checking: checking,
		card:     card,
		grocery:  grocery,
	}
}

func (f *dbFixture) add(t *testing.T, account *entity.Account, categoryID *uuid.UUID, day string, amount money.Milliunit) *entity.Transaction {
	t.Helper()

	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("parse date %q: %v", day, err)
	}
	txn := entity.NewTransaction(f.budgetID, account.ID, categoryID, date, amount, "Payee", "")
	if err := NewTransactionRepository(f.db).Create(context.Background(), txn); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return txn
}

func (f *dbFixture) transfer(t *testing.T, from, to *entity.Account, day string, amount money.Milliunit) {
	t.Helper()

	date, _ := time.Parse("2006-01-02", day)
	out := entity.NewTransaction(f.budgetID, from.ID, nil, date, -amount, "Transfer : "+to.Name, "")
	out.TransferAccountID = &to.ID
	in := entity.NewTransaction(f.budgetID, to.ID, nil, date, amount, "Transfer : "+from.Name, "")
	in.TransferAccountID = &from.ID
	if err := NewTransactionRepository(f.db).CreatePair(context.Background(), out, in); err != nil {
		t.Fatalf("create transfer pair: %v", err)
	}
}

func TestTransactionRepository_Aggregates(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	repo := NewTransactionRepository(f.db)

	// January: 2000 inflow, 200 grocery spending on cash, 150 on the card.
	f.add(t, f.checking, nil, "2025-01-01", 2_000_000)
	f.add(t, f.checking, &f.grocery.ID, "2025-01-10", -200_000)
	f.add(t, f.card, &f.grocery.ID, "2025-01-15", -150_000)
	// February: grocery refund of 30 on cash, 100 payment to the card.
	f.add(t, f.checking, &f.grocery.ID, "2025-02-05", 30_000)
	f.transfer(t, f.checking, f.card, "2025-02-20", 100_000)
	// March is beyond the queried range throughout.
	f.add(t, f.checking, &f.grocery.ID, "2025-03-01", -999_000)

	t.Run("monthly activity by category", func(t *testing.T) {
		activity, err := repo.MonthlyActivityByCategory(ctx, f.budgetID, "2025-02")
		if err != nil {
			t.Fatalf("MonthlyActivityByCategory: %v", err)
		}
		if got := activity["2025-01"][f.grocery.ID]; got != -350_000 {
			t.Errorf("january grocery activity = %d, want -350000", got)
		}
		if got := activity["2025-02"][f.grocery.ID]; got != 30_000 {
			t.Errorf("february grocery activity = %d, want 30000", got)
		}
		if _, ok := activity["2025-03"]; ok {
			t.Error("march should be outside the queried range")
		}
	})

	t.Run("cash spending excludes credit and clamps refunds", func(t *testing.T) {
		spending, err := repo.MonthlyCashSpendingByCategory(ctx, f.budgetID, "2025-02")
		if err != nil {
			t.Fatalf("MonthlyCashSpendingByCategory: %v", err)
		}
		if got := spending["2025-01"][f.grocery.ID]; got != 200_000 {
			t.Errorf("january cash spending = %d, want 200000 (card spending excluded)", got)
		}
		if got := spending["2025-02"][f.grocery.ID]; got != 0 {
			t.Errorf("february cash spending = %d, want 0 (refund clamps at zero)", got)
		}
	})

	t.Run("card spending excludes transfer legs", func(t *testing.T) {
		spending, err := repo.MonthlySpendingOnAccount(ctx, f.card.ID, "2025-02")
		if err != nil {
			t.Fatalf("MonthlySpendingOnAccount: %v", err)
		}
		jan := spending["2025-01"]
		if len(jan) != 1 || jan[0].CategoryID != f.grocery.ID {
			t.Fatalf("january card spending rows = %+v", jan)
		}
		if jan[0].Outflow != 150_000 || jan[0].Inflow != 0 {
			t.Errorf("january card spending = %+v, want outflow 150000", jan[0])
		}
		if len(spending["2025-02"]) != 0 {
			t.Errorf("february card spending = %+v, want none (payment is a transfer)", spending["2025-02"])
		}
	})

	t.Run("payments to account", func(t *testing.T) {
		payments, err := repo.MonthlyPaymentsToAccount(ctx, f.card.ID, "2025-02")
		if err != nil {
			t.Fatalf("MonthlyPaymentsToAccount: %v", err)
		}
		if got := payments["2025-02"]; got != 100_000 {
			t.Errorf("february payment = %d, want 100000", got)
		}
	})

	t.Run("cash balance", func(t *testing.T) {
		balance, err := repo.CashBalance(ctx, f.budgetID, "2025-02")
		if err != nil {
			t.Fatalf("CashBalance: %v", err)
		}
		// 2000 - 200 + 30 - 100 transfer out.
		if balance != 1_730_000 {
			t.Errorf("cash balance = %d, want 1730000", balance)
		}
	})

	t.Run("credit balances include empty accounts", func(t *testing.T) {
		balances, err := repo.CreditAccountBalances(ctx, f.budgetID, "2025-01")
		if err != nil {
			t.Fatalf("CreditAccountBalances: %v", err)
		}
		if got := balances[f.card.ID]; got != -150_000 {
			t.Errorf("january card balance = %d, want -150000", got)
		}

		spare := entity.NewAccount(f.budgetID, "Mastercard", entity.AccountTypeCredit, "")
		if err := NewAccountRepository(f.db).CreateWithSetup(ctx, spare, nil, nil); err != nil {
			t.Fatalf("create spare card: %v", err)
		}
		balances, err = repo.CreditAccountBalances(ctx, f.budgetID, "2025-02")
		if err != nil {
			t.Fatalf("CreditAccountBalances: %v", err)
		}
		if got, ok := balances[spare.ID]; !ok || got != 0 {
			t.Errorf("unused card balance = %d (present %v), want 0 and present", got, ok)
		}
		if got := balances[f.card.ID]; got != -50_000 {
			t.Errorf("february card balance = %d, want -50000", got)
		}
	})

	t.Run("monthly inflow ignores transfers and categorized rows", func(t *testing.T) {
		inflow, err := repo.MonthlyInflow(ctx, f.budgetID, "2025-02")
		if err != nil {
			t.Fatalf("MonthlyInflow: %v", err)
		}
		if got := inflow["2025-01"]; got != 2_000_000 {
			t.Errorf("january inflow = %d, want 2000000", got)
		}
		if got := inflow["2025-02"]; got != 0 {
			t.Errorf("february inflow = %d, want 0 (transfer leg is not income)", got)
		}
	})
}

func TestTransactionRepository_ClearedAndReconcile(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	repo := NewTransactionRepository(f.db)

	cleared := f.add(t, f.checking, nil, "2025-01-01", 1_000_000)
	cleared.Cleared = entity.ClearedStatusCleared
	if err := repo.Update(ctx, cleared); err != nil {
		t.Fatalf("update: %v", err)
	}
	f.add(t, f.checking, nil, "2025-01-05", -250_000)

	balance, err := repo.ClearedBalance(ctx, f.checking.ID)
	if err != nil {
		t.Fatalf("ClearedBalance: %v", err)
	}
	if balance != 1_000_000 {
		t.Errorf("cleared balance = %d, want 1000000 (uncleared excluded)", balance)
	}

	adjustment := entity.NewTransaction(f.budgetID, f.checking.ID, nil,
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), -24_500, "Reconciliation Balance Adjustment", "")
	count, err := repo.ReconcileAccount(ctx, f.checking.ID, adjustment)
	if err != nil {
		t.Fatalf("ReconcileAccount: %v", err)
	}
	if count != 2 {
		t.Errorf("reconciled count = %d, want 2 (flipped row plus adjustment)", count)
	}

	locked, err := repo.FindByID(ctx, cleared.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if locked.Cleared != entity.ClearedStatusReconciled {
		t.Errorf("cleared row status = %s, want reconciled", locked.Cleared)
	}

	balance, err = repo.ClearedBalance(ctx, f.checking.ID)
	if err != nil {
		t.Fatalf("ClearedBalance: %v", err)
	}
	if balance != 975_500 {
		t.Errorf("cleared balance after reconcile = %d, want 975500", balance)
	}
}

func TestTransactionRepository_FindByAccountOrder(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	repo := NewTransactionRepository(f.db)

	f.add(t, f.checking, nil, "2025-01-10", 100)
	f.add(t, f.checking, nil, "2025-01-20", 200)
	f.add(t, f.checking, nil, "2025-01-15", 300)

	txns, err := repo.FindByAccount(ctx, f.checking.ID)
	if err != nil {
		t.Fatalf("FindByAccount: %v", err)
	}
	if len(txns) != 3 {
		t.Fatalf("len = %d, want 3", len(txns))
	}
	for i, want := range []money.Milliunit{200, 300, 100} {
		if txns[i].Amount != want {
			t.Errorf("txns[%d].Amount = %d, want %d (newest first)", i, txns[i].Amount, want)
		}
	}
}

func TestAccountRepository_CreateWithSetup(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	accountRepo := NewAccountRepository(f.db)
	categoryRepo := NewCategoryRepository(f.db)

	group, err := categoryRepo.FindOrCreateGroupByName(ctx, f.budgetID, entity.CreditCardPaymentsGroupName)
	if err != nil {
		t.Fatalf("FindOrCreateGroupByName: %v", err)
	}

	card := entity.NewAccount(f.budgetID, "Amex", entity.AccountTypeCredit, "")
	payment := entity.NewCCPaymentCategory(f.budgetID, group.ID, card)
	opening := entity.NewTransaction(f.budgetID, card.ID, nil, card.CreatedAt, -500_000, "Starting Balance", "")
	if err := accountRepo.CreateWithSetup(ctx, card, payment, opening); err != nil {
		t.Fatalf("CreateWithSetup: %v", err)
	}

	found, err := categoryRepo.FindByLinkedAccount(ctx, card.ID)
	if err != nil {
		t.Fatalf("FindByLinkedAccount: %v", err)
	}
	if found == nil || found.Name != "Amex" {
		t.Fatalf("payment category = %+v, want name Amex", found)
	}

	txns, err := NewTransactionRepository(f.db).FindByAccount(ctx, card.ID)
	if err != nil {
		t.Fatalf("FindByAccount: %v", err)
	}
	if len(txns) != 1 || txns[0].Amount != -500_000 {
		t.Fatalf("opening transactions = %+v, want one of -500000", txns)
	}
}

func TestBudgetMonthRepository_ApplyChanges(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	repo := NewBudgetMonthRepository(f.db)

	create := func(amount money.Milliunit) {
		t.Helper()
		err := repo.ApplyChange(ctx, adapterChange(f, "2025-01", amount, budget.DispositionCreate))
		if err != nil {
			t.Fatalf("ApplyChange create: %v", err)
		}
	}

	t.Run("create then update then delete", func(t *testing.T) {
		create(500_000)
		row, err := repo.FindByCategoryAndMonth(ctx, f.grocery.ID, "2025-01")
		if err != nil || row == nil {
			t.Fatalf("row after create = %v, err %v", row, err)
		}
		if row.Assigned != 500_000 {
			t.Errorf("assigned = %d, want 500000", row.Assigned)
		}

		if err := repo.ApplyChange(ctx, adapterChange(f, "2025-01", 250_000, budget.DispositionUpdate)); err != nil {
			t.Fatalf("ApplyChange update: %v", err)
		}
		row, _ = repo.FindByCategoryAndMonth(ctx, f.grocery.ID, "2025-01")
		if row.Assigned != 250_000 {
			t.Errorf("assigned after update = %d, want 250000", row.Assigned)
		}

		if err := repo.ApplyChange(ctx, adapterChange(f, "2025-01", 0, budget.DispositionDelete)); err != nil {
			t.Fatalf("ApplyChange delete: %v", err)
		}
		row, err = repo.FindByCategoryAndMonth(ctx, f.grocery.ID, "2025-01")
		if err != nil {
			t.Fatalf("FindByCategoryAndMonth: %v", err)
		}
		if row != nil {
			t.Errorf("row after delete = %+v, want nil", row)
		}
	})

	t.Run("update on missing row fails", func(t *testing.T) {
		err := repo.ApplyChange(ctx, adapterChange(f, "2025-06", 100, budget.DispositionUpdate))
		if err == nil {
			t.Fatal("expected error updating a missing row")
		}
	})

	t.Run("move money keeps both rows consistent", func(t *testing.T) {
		create(400_000)
		categoryRepo := NewCategoryRepository(f.db)
		groups, err := categoryRepo.FindGroupsByBudget(ctx, f.budgetID)
		if err != nil || len(groups) == 0 {
			t.Fatalf("groups: %v, err %v", groups, err)
		}
		rent := entity.NewCategory(f.budgetID, groups[0].ID, "Rent", 1)
		if err := categoryRepo.Create(ctx, rent); err != nil {
			t.Fatalf("create rent: %v", err)
		}

		source := adapterChange(f, "2025-01", 300_000, budget.DispositionUpdate)
		target := adapter.AssignmentChange{
			BudgetID:    f.budgetID,
			CategoryID:  rent.ID,
			Month:       "2025-01",
			NewAssigned: 100_000,
			Disposition: budget.DispositionCreate,
		}
		if err := repo.ApplyMoveMoney(ctx, source, target); err != nil {
			t.Fatalf("ApplyMoveMoney: %v", err)
		}

		src, _ := repo.FindByCategoryAndMonth(ctx, f.grocery.ID, "2025-01")
		dst, _ := repo.FindByCategoryAndMonth(ctx, rent.ID, "2025-01")
		if src.Assigned != 300_000 || dst.Assigned != 100_000 {
			t.Errorf("assigned after move = %d / %d, want 300000 / 100000", src.Assigned, dst.Assigned)
		}

		// A failing target leg must roll the source back.
		badTarget := target
		badTarget.Disposition = budget.DispositionUpdate
		badTarget.CategoryID = uuid.New()
		err = repo.ApplyMoveMoney(ctx, adapterChange(f, "2025-01", 1, budget.DispositionUpdate), badTarget)
		if err == nil {
			t.Fatal("expected move with missing target row to fail")
		}
		src, _ = repo.FindByCategoryAndMonth(ctx, f.grocery.ID, "2025-01")
		if src.Assigned != 300_000 {
			t.Errorf("assigned after failed move = %d, want 300000 (rolled back)", src.Assigned)
		}
	})

	t.Run("sum assigned after", func(t *testing.T) {
		if err := repo.ApplyChange(ctx, adapterChange(f, "2025-04", 70_000, budget.DispositionCreate)); err != nil {
			t.Fatalf("ApplyChange: %v", err)
		}
		sum, err := repo.SumAssignedAfter(ctx, f.budgetID, "2025-01")
		if err != nil {
			t.Fatalf("SumAssignedAfter: %v", err)
		}
		if sum != 70_000 {
			t.Errorf("sum = %d, want 70000", sum)
		}
	})
}

func adapterChange(f *dbFixture, month string, assigned money.Milliunit, disposition budget.Disposition) adapter.AssignmentChange {
	return adapter.AssignmentChange{
		BudgetID:    f.budgetID,
		CategoryID:  f.grocery.ID,
		Month:       month,
		NewAssigned: assigned,
		Disposition: disposition,
	}
}

func TestUserRepository_AbsenceAndUniqueness(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if missing != nil {
		t.Errorf("missing user = %+v, want nil", missing)
	}

	user := entity.NewUser("dup@example.com", "First", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	exists, err := repo.ExistsByEmail(ctx, "dup@example.com")
	if err != nil || !exists {
		t.Errorf("ExistsByEmail = %v, err %v, want true", exists, err)
	}
	if err := repo.Create(ctx, entity.NewUser("dup@example.com", "Second", "hash")); err == nil {
		t.Error("expected unique email violation")
	}
}

func TestCategoryRepository_DeleteRemovesBudgetRows(t *testing.T) {
	f := newDBFixture(t)
	ctx := context.Background()
	categoryRepo := NewCategoryRepository(f.db)
	monthRepo := NewBudgetMonthRepository(f.db)

	err := monthRepo.ApplyChange(ctx, adapterChange(f, "2025-01", 100_000, budget.DispositionCreate))
	if err != nil {
		t.Fatalf("ApplyChange: %v", err)
	}

	if err := categoryRepo.Delete(ctx, f.grocery.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := categoryRepo.FindByID(ctx, f.grocery.ID)
	if err != nil || found != nil {
		t.Errorf("category after delete = %+v, err %v, want nil", found, err)
	}
	row, err := monthRepo.FindByCategoryAndMonth(ctx, f.grocery.ID, "2025-01")
	if err != nil || row != nil {
		t.Errorf("budget row after delete = %+v, err %v, want nil", row, err)
	}
}
