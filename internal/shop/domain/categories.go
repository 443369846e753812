package domain

import (
	"context"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
)

type CategoriesRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	FetchCategories(ctx context.Context, querier database.Querier) ([]Category, error)
	CountListingsPerCategory(ctx context.Context) (map[string]int, error)
	CreateCategory(ctx context.Context, category Category) (Category, error)
	// LockHierarchy serializes hierarchy changes until the surrounding transaction ends.
	LockHierarchy(ctx context.Context, executor database.Executor) error
	UpdateParent(ctx context.Context, querier database.Querier, categoryId string, parentId *string) (Category, error)
	DeleteCategory(ctx context.Context, executor database.Executor, categoryId string) error
	CountExisting(ctx context.Context, querier database.Querier, categoryIds []string) (int, error)
	AssignListings(ctx context.Context, executor database.Executor, listingIds, categoryIds []string) error
	UnassignListings(ctx context.Context, executor database.Executor, listingIds, categoryIds []string) error
}

type Category struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Emoji    string  `json:"emoji"`
	ParentId *string `json:"parentId"`
}

type CategoryNode struct {
	Category
	ListingCount int            `json:"listingCount"`
	Children     []CategoryNode `json:"children"`
}
