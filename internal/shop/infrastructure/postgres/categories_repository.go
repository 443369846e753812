package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id::text, name, emoji, parent_id::text`

type CategoriesRepository struct {
	querier database.Querier
}

func NewCategoriesRepository(querier database.Querier) *CategoriesRepository {
	return &CategoriesRepository{
		querier: querier,
	}
}

func (cr *CategoriesRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return cr.FetchCategories(ctx, cr.querier)
}

func (cr *CategoriesRepository) FetchCategories(ctx context.Context, querier database.Querier) ([]domain.Category, error) {
	listSQL := `SELECT ` + categoryColumns + ` FROM shop_categories ORDER BY name, id`

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

func (cr *CategoriesRepository) CountListingsPerCategory(ctx context.Context) (map[string]int, error) {
	countSQL := `SELECT category_id::text, count(*) FROM shop_listing_categories GROUP BY category_id`

	rows, err := cr.querier.Query(ctx, countSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings per category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			categoryId string
			count      int
		)

		if err := rows.Scan(&categoryId, &count); err != nil {
			return nil, fmt.Errorf("failed to scan listing count: %w", err)
		}
		counts[categoryId] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing counts: %w", err)
	}

	return counts, nil
}

func (cr *CategoriesRepository) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	insertSQL := `INSERT INTO shop_categories (name, emoji, parent_id)
VALUES ($1, $2, $3)
RETURNING ` + categoryColumns

	created, err := scanCategory(cr.querier.QueryRow(ctx, insertSQL, category.Name, category.Emoji, category.ParentId))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Category{}, &domain.CategoryNotFoundError{Msg: "parent category not found"}
		}

		return domain.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}

	return created, nil
}

func (cr *CategoriesRepository) LockHierarchy(ctx context.Context, executor database.Executor) error {
	_, err := executor.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('shop_categories'))`)
	if err != nil {
		return fmt.Errorf("failed to lock category hierarchy: %w", err)
	}

	return nil
}

func (cr *CategoriesRepository) UpdateParent(ctx context.Context, querier database.Querier, categoryId string, parentId *string) (domain.Category, error) {
	updateSQL := `UPDATE shop_categories SET parent_id = $1 WHERE id = $2
RETURNING ` + categoryColumns

	category, err := scanCategory(querier.QueryRow(ctx, updateSQL, parentId, categoryId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, &domain.CategoryNotFoundError{Msg: fmt.Sprintf("category %s not found", categoryId)}
		} else if isForeignKeyViolation(err) {
			return domain.Category{}, &domain.CategoryNotFoundError{Msg: "parent category not found"}
		}

		return domain.Category{}, fmt.Errorf("failed to update category parent: %w", err)
	}

	return category, nil
}

// DeleteCategory moves the children of the category to the root before
// removing it. Listing tags go with the category through the cascade.
func (cr *CategoriesRepository) DeleteCategory(ctx context.Context, executor database.Executor, categoryId string) error {
	detachSQL := `UPDATE shop_categories SET parent_id = NULL WHERE parent_id = $1`
	_, err := executor.Exec(ctx, detachSQL, categoryId)
	if err != nil {
		return fmt.Errorf("failed to detach child categories: %w", err)
	}

	deleteSQL := `DELETE FROM shop_categories WHERE id = $1`
	tag, err := executor.Exec(ctx, deleteSQL, categoryId)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.CategoryNotFoundError{Msg: fmt.Sprintf("category %s not found", categoryId)}
	}

	return nil
}

func (cr *CategoriesRepository) CountExisting(ctx context.Context, querier database.Querier, categoryIds []string) (int, error) {
	countSQL := `SELECT count(*) FROM shop_categories WHERE id = ANY($1::uuid[])`

	var count int
	err := querier.QueryRow(ctx, countSQL, categoryIds).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

func (cr *CategoriesRepository) AssignListings(ctx context.Context, executor database.Executor, listingIds, categoryIds []string) error {
	assignSQL := `INSERT INTO shop_listing_categories (listing_id, category_id)
SELECT l, c FROM unnest($1::uuid[]) AS l CROSS JOIN unnest($2::uuid[]) AS c
ON CONFLICT DO NOTHING`

	_, err := executor.Exec(ctx, assignSQL, listingIds, categoryIds)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ValidationError{Msg: "unknown listing or category"}
		}

		return fmt.Errorf("failed to assign categories: %w", err)
	}

	return nil
}

func (cr *CategoriesRepository) UnassignListings(ctx context.Context, executor database.Executor, listingIds, categoryIds []string) error {
	unassignSQL := `DELETE FROM shop_listing_categories
WHERE listing_id = ANY($1::uuid[]) AND category_id = ANY($2::uuid[])`

	_, err := executor.Exec(ctx, unassignSQL, listingIds, categoryIds)
	if err != nil {
		return fmt.Errorf("failed to unassign categories: %w", err)
	}

	return nil
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var category domain.Category

	err := row.Scan(&category.Id, &category.Name, &category.Emoji, &category.ParentId)
	if err != nil {
		return domain.Category{}, err
	}

	return category, nil
}
