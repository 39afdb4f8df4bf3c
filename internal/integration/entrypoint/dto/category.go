package dto

import (
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/entity"
)

// CreateCategoryGroupRequest represents the request body for group creation.
type CreateCategoryGroupRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	GroupID   string `json:"group_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest represents the request body for a category update.
type UpdateCategoryRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Hidden    *bool   `json:"hidden,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
	GroupID   *string `json:"group_id,omitempty" binding:"omitempty,uuid"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID              string `json:"id"`
	GroupID         string `json:"group_id"`
	Name            string `json:"name"`
	Hidden          bool   `json:"hidden"`
	SortOrder       int    `json:"sort_order"`
	LinkedAccountID string `json:"linked_account_id,omitempty"`
}

// CategoryGroupResponse represents a group with its categories.
type CategoryGroupResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	SortOrder  int                `json:"sort_order"`
	Categories []CategoryResponse `json:"categories"`
}

// CategoryListResponse represents the grouped category listing.
type CategoryListResponse struct {
	Groups []CategoryGroupResponse `json:"groups"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	response := CategoryResponse{
		ID:        cat.ID.String(),
		GroupID:   cat.GroupID.String(),
		Name:      cat.Name,
		Hidden:    cat.Hidden,
		SortOrder: cat.SortOrder,
	}
	if cat.LinkedAccountID != nil {
		response.LinkedAccountID = cat.LinkedAccountID.String()
	}
	return response
}

// ToCategoryGroupResponse converts a domain CategoryGroup entity to its DTO.
func ToCategoryGroupResponse(group *entity.CategoryGroup) CategoryGroupResponse {
	return CategoryGroupResponse{
		ID:         group.ID.String(),
		Name:       group.Name,
		SortOrder:  group.SortOrder,
		Categories: []CategoryResponse{},
	}
}

// ToCategoryListResponse converts grouped categories to a CategoryListResponse.
func ToCategoryListResponse(groups []*entity.CategoryGroupWithCategories) CategoryListResponse {
	list := make([]CategoryGroupResponse, len(groups))
	for i, g := range groups {
		response := ToCategoryGroupResponse(g.Group)
		for _, cat := range g.Categories {
			response.Categories = append(response.Categories, ToCategoryResponse(cat))
		}
		list[i] = response
	}
	return CategoryListResponse{Groups: list}
}
