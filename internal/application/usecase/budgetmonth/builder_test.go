package budgetmonth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter/adaptertest"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// fixture builds a budget with a checking account, a credit card (with its
// payment category), and a few envelopes, then replays three months of
// activity:
//
//	2025-01: +2000 inflow, assign 500 groceries / 1000 rent, spend 200
//	         groceries cash
//	2025-02: spend 150 groceries on the credit card (fully funded)
//	2025-03: pay 100 to the card from checking
type fixture struct {
	store      *adaptertest.MemoryStore
	builder    *Builder
	budgetID   uuid.UUID
	checking   *entity.Account
	card       *entity.Account
	groceries  *entity.Category
	rent       *entity.Category
	ccPayment  *entity.Category
	groupID    uuid.UUID
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func m(v int64) money.Milliunit { return money.Milliunit(v * 1000) }

func newFixture(t *testing.T, currentMonth string) *fixture {
	t.Helper()
	store := adaptertest.NewMemoryStore()

	user := entity.NewUser("sam@example.com", "Sam", "hash")
	store.Users = append(store.Users, user)
	b := entity.NewBudget(user.ID, "My Budget", "USD")
	store.Budgets = append(store.Budgets, b)

	checking := entity.NewAccount(b.ID, "Checking", entity.AccountTypeChecking, "")
	card := entity.NewAccount(b.ID, "Visa", entity.AccountTypeCredit, "")
	store.Accounts = append(store.Accounts, checking, card)

	group := entity.NewCategoryGroup(b.ID, "Bills", 0)
	ccGroup := entity.NewCategoryGroup(b.ID, entity.CreditCardPaymentsGroupName, 99)
	store.Groups = append(store.Groups, group, ccGroup)

	groceries := entity.NewCategory(b.ID, group.ID, "Groceries", 0)
	rent := entity.NewCategory(b.ID, group.ID, "Rent", 1)
	ccPayment := entity.NewCCPaymentCategory(b.ID, ccGroup.ID, card)
	store.Categories = append(store.Categories, groceries, rent, ccPayment)

	f := &fixture{
		store:     store,
		budgetID:  b.ID,
		checking:  checking,
		card:      card,
		groceries: groceries,
		rent:      rent,
		ccPayment: ccPayment,
		groupID:   group.ID,
	}
	f.builder = NewBuilder(
		store.AccountRepo(), store.CategoryRepo(),
		store.BudgetMonthRepo(), store.TransactionRepo(),
		budget.FixedClock(currentMonth),
	)

	// January: income, assignments, cash spending.
	f.addTransaction(checking.ID, nil, "2025-01-05", 2000)
	f.assign(groceries.ID, "2025-01", 500)
	f.assign(rent.ID, "2025-01", 1000)
	f.addTransaction(checking.ID, &groceries.ID, "2025-01-12", -200)

	// February: card spending.
	f.addTransaction(card.ID, &groceries.ID, "2025-02-08", -150)

	// March: card payment, as a transfer pair.
	f.addTransfer(checking.ID, card.ID, "2025-03-03", 100)

	return f
}

func (f *fixture) addTransaction(accountID uuid.UUID, categoryID *uuid.UUID, day string, units int64) {
	txn := entity.NewTransaction(f.budgetID, accountID, categoryID, date(day), m(units), "", "")
	f.store.Transactions = append(f.store.Transactions, txn)
}

func (f *fixture) addTransfer(fromID, toID uuid.UUID, day string, units int64) {
	out := entity.NewTransaction(f.budgetID, fromID, nil, date(day), -m(units), "", "")
	out.TransferAccountID = &toID
	in := entity.NewTransaction(f.budgetID, toID, nil, date(day), m(units), "", "")
	in.TransferAccountID = &fromID
	f.store.Transactions = append(f.store.Transactions, out, in)
}

func (f *fixture) assign(categoryID uuid.UUID, month string, units int64) {
	row := entity.NewBudgetMonth(f.budgetID, categoryID, month, m(units))
	f.store.BudgetMonths = append(f.store.BudgetMonths, row)
}

func (f *fixture) category(t *testing.T, view *MonthView, id uuid.UUID) CategoryMonth {
	t.Helper()
	for _, c := range view.Categories {
		if c.CategoryID == id {
			return c
		}
	}
	t.Fatalf("category %s not in view", id)
	return CategoryMonth{}
}

func TestBuilder_CarryforwardChain(t *testing.T) {
	f := newFixture(t, "2025-03")
	ctx := context.Background()

	view, err := f.builder.Build(ctx, f.budgetID, "2025-03")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	groceries := f.category(t, view, f.groceries.ID)
	// 500 assigned - 200 cash - 150 card, carried across three months.
	if groceries.Available != m(150) {
		t.Errorf("groceries available = %v, want %v", groceries.Available, m(150))
	}
	if groceries.Overspending != budget.OverspendingNone {
		t.Errorf("groceries overspending = %q, want none", groceries.Overspending)
	}

	rent := f.category(t, view, f.rent.ID)
	if rent.Available != m(1000) {
		t.Errorf("rent available = %v, want %v", rent.Available, m(1000))
	}
}

func TestBuilder_CCPaymentCategory(t *testing.T) {
	f := newFixture(t, "2025-03")
	ctx := context.Background()

	// February: the 150 card spend was fully funded, so the payment
	// category picks it up as positive activity.
	feb, err := f.builder.Build(ctx, f.budgetID, "2025-02")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	cc := f.category(t, feb, f.ccPayment.ID)
	if cc.Activity != m(150) {
		t.Errorf("february cc activity = %v, want %v", cc.Activity, m(150))
	}
	if cc.Available != m(150) {
		t.Errorf("february cc available = %v, want %v", cc.Available, m(150))
	}

	// March: the 100 payment drains the payment category.
	mar, err := f.builder.Build(ctx, f.budgetID, "2025-03")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	cc = f.category(t, mar, f.ccPayment.ID)
	if cc.Activity != m(-100) {
		t.Errorf("march cc activity = %v, want %v", cc.Activity, m(-100))
	}
	if cc.Available != m(50) {
		t.Errorf("march cc available = %v, want %v", cc.Available, m(50))
	}
}

func TestBuilder_ReadyToAssign(t *testing.T) {
	f := newFixture(t, "2025-03")
	ctx := context.Background()

	view, err := f.builder.Build(ctx, f.budgetID, "2025-03")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	// cash 1700, card balance -50 (no positive CC), total available
	// 150+1000+50 = 1200.
	if want := m(500); view.ReadyToAssign != want {
		t.Errorf("ready to assign = %v, want %v", view.ReadyToAssign, want)
	}

	// 2000 inflow - 1500 assigned, all of it from January's leftover.
	if view.Breakdown.LeftOver != m(500) {
		t.Errorf("breakdown leftover = %v, want %v", view.Breakdown.LeftOver, m(500))
	}
	if view.Breakdown.InflowThisMonth != money.Zero {
		t.Errorf("breakdown inflow = %v, want 0", view.Breakdown.InflowThisMonth)
	}
}

func TestBuilder_CashOverspendingRaisesRTA(t *testing.T) {
	f := newFixture(t, "2025-03")
	ctx := context.Background()

	dining := entity.NewCategory(f.budgetID, f.groupID, "Dining", 2)
	f.store.Categories = append(f.store.Categories, dining)
	f.addTransaction(f.checking.ID, &dining.ID, "2025-03-10", -50)

	view, err := f.builder.Build(ctx, f.budgetID, "2025-03")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	c := f.category(t, view, dining.ID)
	if c.Available != m(-50) {
		t.Errorf("dining available = %v, want %v", c.Available, m(-50))
	}
	if c.Overspending != budget.OverspendingCash {
		t.Errorf("dining overspending = %q, want cash", c.Overspending)
	}

	// cash 1650, total available 1150, plus the 50 added back.
	if want := m(550); view.ReadyToAssign != want {
		t.Errorf("ready to assign = %v, want %v", view.ReadyToAssign, want)
	}
}

func TestBuilder_NegativeBalancesDoNotCarryForward(t *testing.T) {
	f := newFixture(t, "2025-04")
	ctx := context.Background()

	dining := entity.NewCategory(f.budgetID, f.groupID, "Dining", 2)
	f.store.Categories = append(f.store.Categories, dining)
	f.addTransaction(f.checking.ID, &dining.ID, "2025-03-10", -50)

	view, err := f.builder.Build(ctx, f.budgetID, "2025-04")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	c := f.category(t, view, dining.ID)
	if c.Available != money.Zero {
		t.Errorf("dining available in april = %v, want 0", c.Available)
	}

	// The March overspend now shows up as a lower RTA instead: cash 1650,
	// total available 1200.
	if want := m(450); view.ReadyToAssign != want {
		t.Errorf("ready to assign = %v, want %v", view.ReadyToAssign, want)
	}
}

func TestBuilder_PastMonthIgnoresFutureAssignments(t *testing.T) {
	f := newFixture(t, "2025-03")
	ctx := context.Background()

	// Money assigned in March must not leak into January's RTA when
	// January is viewed as a past month.
	jan, err := f.builder.Build(ctx, f.budgetID, "2025-01")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	// cash 1800 (2000 - 200), available 300 + 1000.
	if want := m(500); jan.ReadyToAssign != want {
		t.Errorf("january ready to assign = %v, want %v", jan.ReadyToAssign, want)
	}
}

func TestBuilder_CategoryState(t *testing.T) {
	f := newFixture(t, "2025-03")
	ctx := context.Background()

	row, carryforward, available, err := f.builder.CategoryState(ctx, f.budgetID, f.groceries.ID, "2025-02")
	if err != nil {
		t.Fatalf("CategoryState returned error: %v", err)
	}
	if row != nil {
		t.Errorf("expected no persisted row for february, got %+v", row)
	}
	if carryforward != m(300) {
		t.Errorf("carryforward = %v, want %v", carryforward, m(300))
	}
	if available != m(150) {
		t.Errorf("available = %v, want %v", available, m(150))
	}
}
