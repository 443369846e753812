package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

const listingSelectSQL = `SELECT l.id::text, l.game_server_id::text, l.name, l.price, l.items, l.stock, l.stock_enabled, l.draft,
	COALESCE(array_agg(lc.category_id::text ORDER BY lc.category_id) FILTER (WHERE lc.category_id IS NOT NULL), '{}') AS category_ids
FROM shop_listings l
LEFT JOIN shop_listing_categories lc ON lc.listing_id = l.id`

type ListingsRepository struct {
	querier database.Querier
}

func NewListingsRepository(querier database.Querier) *ListingsRepository {
	return &ListingsRepository{
		querier: querier,
	}
}

func (lr *ListingsRepository) GetListing(ctx context.Context, listingId string) (domain.Listing, error) {
	getListingSQL := listingSelectSQL + `
WHERE l.id = $1
GROUP BY l.id`

	listing, err := scanListing(lr.querier.QueryRow(ctx, getListingSQL, listingId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, &domain.ListingNotFoundError{Msg: fmt.Sprintf("listing %s not found", listingId)}
		}

		return domain.Listing{}, fmt.Errorf("failed to find listing: %w", err)
	}

	return listing, nil
}

// LockListing takes a row lock that conflicts with draft updates and other
// purchases of the same listing. Category tags are not loaded.
func (lr *ListingsRepository) LockListing(ctx context.Context, querier database.Querier, listingId string) (domain.Listing, error) {
	lockListingSQL := `SELECT id::text, game_server_id::text, name, price, items, stock, stock_enabled, draft
FROM shop_listings
WHERE id = $1
FOR NO KEY UPDATE`

	var listing domain.Listing
	err := querier.QueryRow(ctx, lockListingSQL, listingId).Scan(
		&listing.Id,
		&listing.GameServerId,
		&listing.Name,
		&listing.Price,
		&listing.Items,
		&listing.Stock,
		&listing.StockEnabled,
		&listing.Draft,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Listing{}, &domain.ListingNotFoundError{Msg: fmt.Sprintf("listing %s not found", listingId)}
		}

		return domain.Listing{}, fmt.Errorf("failed to lock listing: %w", err)
	}

	return listing, nil
}

func (lr *ListingsRepository) SearchListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	conditions := []string{"l.game_server_id = $1"}
	args := []any{filter.GameServerId}

	if !filter.IncludeDrafts {
		conditions = append(conditions, "NOT l.draft")
	}

	if len(filter.CategoryIds) > 0 {
		args = append(args, filter.CategoryIds)
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM shop_listing_categories f WHERE f.listing_id = l.id AND f.category_id = ANY($%d::uuid[]))",
			len(args),
		))
	}

	searchSQL := listingSelectSQL + `
WHERE ` + strings.Join(conditions, " AND ") + `
GROUP BY l.id
ORDER BY l.name, l.id`

	rows, err := lr.querier.Query(ctx, searchSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}

	return listings, nil
}

func (lr *ListingsRepository) CreateListing(ctx context.Context, executor database.QueryExecuter, listing domain.Listing) (domain.Listing, error) {
	if listing.Items == nil {
		listing.Items = []domain.ListingItem{}
	}
	if listing.CategoryIds == nil {
		listing.CategoryIds = []string{}
	}

	insertListingSQL := `INSERT INTO shop_listings (game_server_id, name, price, items, stock, stock_enabled, draft)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text`

	err := executor.QueryRow(ctx, insertListingSQL,
		listing.GameServerId, listing.Name, listing.Price, listing.Items, listing.Stock, listing.StockEnabled, listing.Draft,
	).Scan(&listing.Id)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("failed to insert listing: %w", err)
	}

	if len(listing.CategoryIds) == 0 {
		return listing, nil
	}

	tagListingSQL := `INSERT INTO shop_listing_categories (listing_id, category_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`
	_, err = executor.Exec(ctx, tagListingSQL, listing.Id, listing.CategoryIds)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Listing{}, &domain.CategoryNotFoundError{Msg: "one or more categories not found"}
		}

		return domain.Listing{}, fmt.Errorf("failed to tag listing: %w", err)
	}

	return listing, nil
}

func (lr *ListingsRepository) SetDraft(ctx context.Context, executor database.Executor, listingId string, draft bool) error {
	setDraftSQL := `UPDATE shop_listings SET draft = $1 WHERE id = $2`

	tag, err := executor.Exec(ctx, setDraftSQL, draft, listingId)
	if err != nil {
		return fmt.Errorf("failed to update listing draft flag: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ListingNotFoundError{Msg: fmt.Sprintf("listing %s not found", listingId)}
	}

	return nil
}

func (lr *ListingsRepository) CountExisting(ctx context.Context, querier database.Querier, listingIds []string) (int, error) {
	countSQL := `SELECT count(*) FROM shop_listings WHERE id = ANY($1::uuid[])`

	var count int
	err := querier.QueryRow(ctx, countSQL, listingIds).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return count, nil
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var listing domain.Listing

	err := row.Scan(
		&listing.Id,
		&listing.GameServerId,
		&listing.Name,
		&listing.Price,
		&listing.Items,
		&listing.Stock,
		&listing.StockEnabled,
		&listing.Draft,
		&listing.CategoryIds,
	)
	if err != nil {
		return domain.Listing{}, err
	}

	return listing, nil
}
