package category

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing a budget's category
// groups with their categories.
type ListCategoriesInput struct {
	UserID        uuid.UUID
	BudgetID      uuid.UUID
	IncludeHidden bool
}

// ListCategoriesOutput represents the grouped category listing.
type ListCategoriesOutput struct {
	Groups []*entity.CategoryGroupWithCategories
}

// ListCategoriesUseCase lists a budget's categories grouped for display.
type ListCategoriesUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if err := authorizeBudget(ctx, uc.budgetRepo, input.UserID, input.BudgetID); err != nil {
		return nil, err
	}

	groups, err := uc.categoryRepo.FindGroupsByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category groups: %w", err)
	}
	categories, err := uc.categoryRepo.FindByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	byGroup := make(map[uuid.UUID][]*entity.Category)
	for _, cat := range categories {
		if cat.Hidden && !input.IncludeHidden {
			continue
		}
		byGroup[cat.GroupID] = append(byGroup[cat.GroupID], cat)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].SortOrder < groups[j].SortOrder
	})

	out := &ListCategoriesOutput{Groups: make([]*entity.CategoryGroupWithCategories, 0, len(groups))}
	for _, group := range groups {
		cats := byGroup[group.ID]
		sort.SliceStable(cats, func(i, j int) bool {
			return cats[i].SortOrder < cats[j].SortOrder
		})
		out.Groups = append(out.Groups, &entity.CategoryGroupWithCategories{
			Group:      group,
			Categories: cats,
		})
	}
	return out, nil
}
