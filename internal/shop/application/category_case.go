package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"golang.org/x/sync/errgroup"
)

type CategoryCase struct {
	txManager            database.TxManager
	categoriesRepository domain.CategoriesRepository
	listingsRepository   domain.ListingsRepository
	logger               logging.Logger
}

func NewCategoryCase(
	txManager database.TxManager,
	categoriesRepository domain.CategoriesRepository,
	listingsRepository domain.ListingsRepository,
	logger logging.Logger,
) *CategoryCase {
	return &CategoryCase{
		txManager:            txManager,
		categoriesRepository: categoriesRepository,
		listingsRepository:   listingsRepository,
		logger:               logger,
	}
}

func (cc *CategoryCase) CreateCategory(ctx context.Context, name, emoji string, parentId *string) (domain.Category, error) {
	category, err := cc.categoriesRepository.CreateCategory(ctx, domain.Category{
		Name:     name,
		Emoji:    emoji,
		ParentId: parentId,
	})
	if err != nil {
		return domain.Category{}, err
	}

	cc.logger.Info("category created", "category_id", category.Id)

	return category, nil
}

// MoveCategory re-parents a category. A nil parent makes it a root. Moves are
// serialized so two concurrent moves can not close a cycle between them.
func (cc *CategoryCase) MoveCategory(ctx context.Context, categoryId string, parentId *string) (domain.Category, error) {
	if parentId != nil && *parentId == categoryId {
		return domain.Category{}, &domain.ValidationError{Msg: "category can not be its own parent"}
	}

	var moved domain.Category

	err := cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		err := cc.categoriesRepository.LockHierarchy(ctx, executor)
		if err != nil {
			return err
		}

		categories, err := cc.categoriesRepository.FetchCategories(ctx, executor)
		if err != nil {
			return err
		}

		tree := domain.NewCategoryTree(categories)
		if !tree.Has(categoryId) {
			return &domain.CategoryNotFoundError{Msg: fmt.Sprintf("category %s not found", categoryId)}
		}

		if parentId != nil {
			if !tree.Has(*parentId) {
				return &domain.CategoryNotFoundError{Msg: fmt.Sprintf("category %s not found", *parentId)}
			}

			if tree.IsDescendant(*parentId, categoryId) {
				return &domain.ValidationError{Msg: "category can not be moved into its own subtree"}
			}
		}

		moved, err = cc.categoriesRepository.UpdateParent(ctx, executor, categoryId, parentId)
		return err
	})
	if err != nil {
		return domain.Category{}, err
	}

	parent := "root"
	if parentId != nil {
		parent = *parentId
	}
	cc.logger.Info("category moved", "category_id", categoryId, "parent_id", parent)

	return moved, nil
}

// DeleteCategory removes a category. Its children become roots and its
// listings lose the tag.
func (cc *CategoryCase) DeleteCategory(ctx context.Context, categoryId string) error {
	err := cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		err := cc.categoriesRepository.LockHierarchy(ctx, executor)
		if err != nil {
			return err
		}

		return cc.categoriesRepository.DeleteCategory(ctx, executor, categoryId)
	})
	if err != nil {
		return err
	}

	cc.logger.Info("category deleted", "category_id", categoryId)

	return nil
}

func (cc *CategoryCase) GetCategoryTree(ctx context.Context) ([]domain.CategoryNode, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var categories []domain.Category
	var counts map[string]int

	group.Go(func() error {
		var err error
		categories, err = cc.categoriesRepository.ListCategories(groupCtx)
		return err
	})

	group.Go(func() error {
		var err error
		counts, err = cc.categoriesRepository.CountListingsPerCategory(groupCtx)
		return err
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return domain.NewCategoryTree(categories).Forest(counts), nil
}

// BulkAssignCategories adds and removes category tags on many listings at
// once. Either every change is applied or none.
func (cc *CategoryCase) BulkAssignCategories(ctx context.Context, listingIds, addCategoryIds, removeCategoryIds []string) error {
	listingIds = uniqueIds(listingIds)
	addCategoryIds = uniqueIds(addCategoryIds)
	removeCategoryIds = uniqueIds(removeCategoryIds)

	if len(listingIds) == 0 {
		return &domain.ValidationError{Msg: "at least one listing is required"}
	}

	if len(addCategoryIds) == 0 && len(removeCategoryIds) == 0 {
		return &domain.ValidationError{Msg: "nothing to add or remove"}
	}

	err := cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		count, err := cc.listingsRepository.CountExisting(ctx, executor, listingIds)
		if err != nil {
			return err
		} else if count != len(listingIds) {
			return &domain.ValidationError{Msg: "one or more listings not found"}
		}

		categoryIds := uniqueIds(append(append([]string{}, addCategoryIds...), removeCategoryIds...))
		count, err = cc.categoriesRepository.CountExisting(ctx, executor, categoryIds)
		if err != nil {
			return err
		} else if count != len(categoryIds) {
			return &domain.ValidationError{Msg: "one or more categories not found"}
		}

		if len(addCategoryIds) > 0 {
			err = cc.categoriesRepository.AssignListings(ctx, executor, listingIds, addCategoryIds)
			if err != nil {
				return err
			}
		}

		if len(removeCategoryIds) > 0 {
			err = cc.categoriesRepository.UnassignListings(ctx, executor, listingIds, removeCategoryIds)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	cc.logger.Info("categories reassigned",
		"listings", len(listingIds),
		"added", len(addCategoryIds),
		"removed", len(removeCategoryIds),
	)

	return nil
}
