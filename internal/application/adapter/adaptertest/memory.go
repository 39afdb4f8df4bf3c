// Package adaptertest provides in-memory implementations of the adapter
// interfaces for use case tests. The aggregate queries mirror the SQL the
// real repositories run, computed over plain slices.
package adaptertest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/budget"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/money"
)

// MemoryStore holds all entities in memory. The per-interface repositories
// returned by its accessors share the same data and lock.
type MemoryStore struct {
	mu           sync.Mutex
	Users        []*entity.User
	Budgets      []*entity.Budget
	Accounts     []*entity.Account
	Groups       []*entity.CategoryGroup
	Categories   []*entity.Category
	BudgetMonths []*entity.BudgetMonth
	Transactions []*entity.Transaction

	cacheData    map[string][]byte
	Invalidated  int
	FailNextMove error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cacheData: make(map[string][]byte)}
}

// UserRepo returns the store's UserRepository view.
func (s *MemoryStore) UserRepo() adapter.UserRepository { return &userRepo{s} }

// BudgetRepo returns the store's BudgetRepository view.
func (s *MemoryStore) BudgetRepo() adapter.BudgetRepository { return &budgetRepo{s} }

// AccountRepo returns the store's AccountRepository view.
func (s *MemoryStore) AccountRepo() adapter.AccountRepository { return &accountRepo{s} }

// CategoryRepo returns the store's CategoryRepository view.
func (s *MemoryStore) CategoryRepo() adapter.CategoryRepository { return &categoryRepo{s} }

// BudgetMonthRepo returns the store's BudgetMonthRepository view.
func (s *MemoryStore) BudgetMonthRepo() adapter.BudgetMonthRepository { return &budgetMonthRepo{s} }

// TransactionRepo returns the store's TransactionRepository view.
func (s *MemoryStore) TransactionRepo() adapter.TransactionRepository { return &transactionRepo{s} }

// Cache returns the store's BudgetMonthCache view.
func (s *MemoryStore) Cache() adapter.BudgetMonthCache { return &monthCache{s} }

type userRepo struct{ s *MemoryStore }

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Users = append(r.s.Users, user)
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

type budgetRepo struct{ s *MemoryStore }

func (r *budgetRepo) Create(ctx context.Context, b *entity.Budget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Budgets = append(r.s.Budgets, b)
	return nil
}

func (r *budgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.Budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *budgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Budget
	for _, b := range r.s.Budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *budgetRepo) Update(ctx context.Context, b *entity.Budget) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.Budgets {
		if existing.ID == b.ID {
			r.s.Budgets[i] = b
			return nil
		}
	}
	return fmt.Errorf("budget %s not found", b.ID)
}

type accountRepo struct{ s *MemoryStore }

func (r *accountRepo) Create(ctx context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Accounts = append(r.s.Accounts, account)
	return nil
}

func (r *accountRepo) CreateWithSetup(ctx context.Context, account *entity.Account, paymentCategory *entity.Category, startingBalance *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Accounts = append(r.s.Accounts, account)
	if paymentCategory != nil {
		r.s.Categories = append(r.s.Categories, paymentCategory)
	}
	if startingBalance != nil {
		r.s.Transactions = append(r.s.Transactions, startingBalance)
	}
	return nil
}

func (r *accountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *accountRepo) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Account
	for _, a := range r.s.Accounts {
		if a.BudgetID == budgetID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *accountRepo) Update(ctx context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.Accounts {
		if existing.ID == account.ID {
			r.s.Accounts[i] = account
			return nil
		}
	}
	return fmt.Errorf("account %s not found", account.ID)
}

type categoryRepo struct{ s *MemoryStore }

func (r *categoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Categories = append(r.s.Categories, category)
	return nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.s.Categories {
		if c.BudgetID == budgetID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *categoryRepo) FindByLinkedAccount(ctx context.Context, accountID uuid.UUID) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.Categories {
		if c.LinkedAccountID != nil && *c.LinkedAccountID == accountID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) ExistsByNameInGroup(ctx context.Context, groupID uuid.UUID, name string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.Categories {
		if c.GroupID == groupID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.Categories {
		if existing.ID == category.ID {
			r.s.Categories[i] = category
			return nil
		}
	}
	return fmt.Errorf("category %s not found", category.ID)
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.Categories {
		if c.ID == id {
			r.s.Categories = append(r.s.Categories[:i], r.s.Categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("category %s not found", id)
}

func (r *categoryRepo) CreateGroup(ctx context.Context, group *entity.CategoryGroup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Groups = append(r.s.Groups, group)
	return nil
}

func (r *categoryRepo) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.CategoryGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.Groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) FindGroupsByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.CategoryGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.CategoryGroup
	for _, g := range r.s.Groups {
		if g.BudgetID == budgetID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *categoryRepo) FindOrCreateGroupByName(ctx context.Context, budgetID uuid.UUID, name string) (*entity.CategoryGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.Groups {
		if g.BudgetID == budgetID && g.Name == name {
			return g, nil
		}
	}
	group := entity.NewCategoryGroup(budgetID, name, len(r.s.Groups))
	r.s.Groups = append(r.s.Groups, group)
	return group, nil
}

type budgetMonthRepo struct{ s *MemoryStore }

func (r *budgetMonthRepo) FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month string) (*entity.BudgetMonth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.BudgetMonths {
		if row.CategoryID == categoryID && row.Month == month {
			return row, nil
		}
	}
	return nil, nil
}

func (r *budgetMonthRepo) FindByBudgetThrough(ctx context.Context, budgetID uuid.UUID, through string) ([]*entity.BudgetMonth, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.BudgetMonth
	for _, row := range r.s.BudgetMonths {
		if row.BudgetID == budgetID && row.Month <= through {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *budgetMonthRepo) SumAssignedAfter(ctx context.Context, budgetID uuid.UUID, after string) (money.Milliunit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := money.Zero
	for _, row := range r.s.BudgetMonths {
		if row.BudgetID == budgetID && row.Month > after {
			sum += row.Assigned
		}
	}
	return sum, nil
}

func (r *budgetMonthRepo) ApplyChange(ctx context.Context, change adapter.AssignmentChange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.applyLocked(change)
}

func (r *budgetMonthRepo) ApplyMoveMoney(ctx context.Context, source, target adapter.AssignmentChange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailNextMove != nil {
		err := r.s.FailNextMove
		r.s.FailNextMove = nil
		return err
	}
	if err := r.applyLocked(source); err != nil {
		return err
	}
	return r.applyLocked(target)
}

func (r *budgetMonthRepo) applyLocked(change adapter.AssignmentChange) error {
	switch change.Disposition {
	case budget.DispositionSkip:
		return nil
	case budget.DispositionCreate:
		r.s.BudgetMonths = append(r.s.BudgetMonths,
			entity.NewBudgetMonth(change.BudgetID, change.CategoryID, change.Month, change.NewAssigned))
		return nil
	case budget.DispositionUpdate:
		for _, row := range r.s.BudgetMonths {
			if row.CategoryID == change.CategoryID && row.Month == change.Month {
				row.Assigned = change.NewAssigned
				return nil
			}
		}
		return fmt.Errorf("budget month row not found for update")
	case budget.DispositionDelete:
		for i, row := range r.s.BudgetMonths {
			if row.CategoryID == change.CategoryID && row.Month == change.Month {
				r.s.BudgetMonths = append(r.s.BudgetMonths[:i], r.s.BudgetMonths[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("budget month row not found for delete")
	}
	return fmt.Errorf("unknown disposition %q", change.Disposition)
}

type transactionRepo struct{ s *MemoryStore }

func (r *transactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Transactions = append(r.s.Transactions, txn)
	return nil
}

func (r *transactionRepo) CreatePair(ctx context.Context, outflow, inflow *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Transactions = append(r.s.Transactions, outflow, inflow)
	return nil
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.Transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *transactionRepo) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Transaction
	for _, t := range r.s.Transactions {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *transactionRepo) Update(ctx context.Context, txn *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.Transactions {
		if existing.ID == txn.ID {
			r.s.Transactions[i] = txn
			return nil
		}
	}
	return fmt.Errorf("transaction %s not found", txn.ID)
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.Transactions {
		if t.ID == id {
			r.s.Transactions = append(r.s.Transactions[:i], r.s.Transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s not found", id)
}

func (r *transactionRepo) MonthlyActivityByCategory(ctx context.Context, budgetID uuid.UUID, through string) (adapter.MonthlyCategoryAmounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(adapter.MonthlyCategoryAmounts)
	for _, t := range r.s.Transactions {
		if t.BudgetID != budgetID || t.Month > through || t.CategoryID == nil {
			continue
		}
		if out[t.Month] == nil {
			out[t.Month] = make(map[uuid.UUID]money.Milliunit)
		}
		out[t.Month][*t.CategoryID] += t.Amount
	}
	return out, nil
}

func (r *transactionRepo) MonthlyCashSpendingByCategory(ctx context.Context, budgetID uuid.UUID, through string) (adapter.MonthlyCategoryAmounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	credit := r.creditAccountsLocked(budgetID)
	net := make(adapter.MonthlyCategoryAmounts)
	for _, t := range r.s.Transactions {
		if t.BudgetID != budgetID || t.Month > through || t.CategoryID == nil || credit[t.AccountID] {
			continue
		}
		if net[t.Month] == nil {
			net[t.Month] = make(map[uuid.UUID]money.Milliunit)
		}
		net[t.Month][*t.CategoryID] -= t.Amount
	}
	for _, byCat := range net {
		for id, v := range byCat {
			byCat[id] = money.Max(v, money.Zero)
		}
	}
	return net, nil
}

func (r *transactionRepo) MonthlySpendingOnAccount(ctx context.Context, accountID uuid.UUID, through string) (map[string][]budget.CategorySpending, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	type key struct {
		month    string
		category uuid.UUID
	}
	sums := make(map[key]*budget.CategorySpending)
	var order []key
	for _, t := range r.s.Transactions {
		if t.AccountID != accountID || t.Month > through || t.CategoryID == nil || t.TransferAccountID != nil {
			continue
		}
		k := key{t.Month, *t.CategoryID}
		cs, ok := sums[k]
		if !ok {
			cs = &budget.CategorySpending{CategoryID: *t.CategoryID}
			sums[k] = cs
			order = append(order, k)
		}
		if t.Amount < 0 {
			cs.Outflow += -t.Amount
		} else {
			cs.Inflow += t.Amount
		}
	}
	out := make(map[string][]budget.CategorySpending)
	for _, k := range order {
		out[k.month] = append(out[k.month], *sums[k])
	}
	return out, nil
}

func (r *transactionRepo) MonthlyPaymentsToAccount(ctx context.Context, accountID uuid.UUID, through string) (map[string]money.Milliunit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]money.Milliunit)
	for _, t := range r.s.Transactions {
		if t.AccountID == accountID && t.Month <= through && t.TransferAccountID != nil && t.Amount > 0 {
			out[t.Month] += t.Amount
		}
	}
	return out, nil
}

func (r *transactionRepo) CashBalance(ctx context.Context, budgetID uuid.UUID, through string) (money.Milliunit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	credit := r.creditAccountsLocked(budgetID)
	sum := money.Zero
	for _, t := range r.s.Transactions {
		if t.BudgetID == budgetID && t.Month <= through && !credit[t.AccountID] {
			sum += t.Amount
		}
	}
	return sum, nil
}

func (r *transactionRepo) CreditAccountBalances(ctx context.Context, budgetID uuid.UUID, through string) (map[uuid.UUID]money.Milliunit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	credit := r.creditAccountsLocked(budgetID)
	out := make(map[uuid.UUID]money.Milliunit)
	for id := range credit {
		out[id] = money.Zero
	}
	for _, t := range r.s.Transactions {
		if t.BudgetID == budgetID && t.Month <= through && credit[t.AccountID] {
			out[t.AccountID] += t.Amount
		}
	}
	return out, nil
}

func (r *transactionRepo) MonthlyInflow(ctx context.Context, budgetID uuid.UUID, through string) (map[string]money.Milliunit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]money.Milliunit)
	for _, t := range r.s.Transactions {
		if t.BudgetID == budgetID && t.Month <= through && t.CategoryID == nil && t.TransferAccountID == nil && t.Amount > 0 {
			out[t.Month] += t.Amount
		}
	}
	return out, nil
}

func (r *transactionRepo) ClearedBalance(ctx context.Context, accountID uuid.UUID) (money.Milliunit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := money.Zero
	for _, t := range r.s.Transactions {
		if t.AccountID == accountID && t.Cleared != entity.ClearedStatusUncleared {
			sum += t.Amount
		}
	}
	return sum, nil
}

func (r *transactionRepo) ReconcileAccount(ctx context.Context, accountID uuid.UUID, adjustment *entity.Transaction) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, t := range r.s.Transactions {
		if t.AccountID == accountID && t.Cleared == entity.ClearedStatusCleared {
			t.Cleared = entity.ClearedStatusReconciled
			count++
		}
	}
	if adjustment != nil {
		adjustment.Cleared = entity.ClearedStatusReconciled
		r.s.Transactions = append(r.s.Transactions, adjustment)
		count++
	}
	return count, nil
}

func (r *transactionRepo) creditAccountsLocked(budgetID uuid.UUID) map[uuid.UUID]bool {
	credit := make(map[uuid.UUID]bool)
	for _, a := range r.s.Accounts {
		if a.BudgetID == budgetID && a.Type.IsCredit() {
			credit[a.ID] = true
		}
	}
	return credit
}

type monthCache struct{ s *MemoryStore }

func (c *monthCache) Get(ctx context.Context, budgetID uuid.UUID, month string) ([]byte, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.cacheData[budgetID.String()+":"+month], nil
}

func (c *monthCache) Set(ctx context.Context, budgetID uuid.UUID, month string, payload []byte) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.cacheData[budgetID.String()+":"+month] = payload
	return nil
}

func (c *monthCache) Invalidate(ctx context.Context, budgetID uuid.UUID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for k := range c.s.cacheData {
		if strings.HasPrefix(k, budgetID.String()+":") {
			delete(c.s.cacheData, k)
		}
	}
	c.s.Invalidated++
	return nil
}
