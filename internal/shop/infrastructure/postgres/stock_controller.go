package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type StockController struct {
	executor database.Executor
}

func NewStockController(executor database.Executor) *StockController {
	return &StockController{
		executor: executor,
	}
}

// Reserve takes amount units of stock in one conditional update. Listings
// without stock tracking are never touched.
func (sc *StockController) Reserve(ctx context.Context, executor database.QueryExecuter, listingId string, amount int) error {
	reserveSQL := `UPDATE shop_listings SET stock = stock - $1 WHERE id = $2 AND stock_enabled AND stock >= $1`
	tag, err := executor.Exec(ctx, reserveSQL, amount, listingId)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	} else if tag.RowsAffected() > 0 {
		return nil
	}

	stockEnabledSQL := `SELECT stock_enabled FROM shop_listings WHERE id = $1`

	var stockEnabled bool
	err = executor.QueryRow(ctx, stockEnabledSQL, listingId).Scan(&stockEnabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.ListingNotFoundError{Msg: fmt.Sprintf("listing %s not found", listingId)}
		}

		return fmt.Errorf("failed to check listing stock mode: %w", err)
	}

	if !stockEnabled {
		return nil
	}

	return &domain.InsufficientStockError{Msg: "insufficient stock"}
}

func (sc *StockController) Release(ctx context.Context, executor database.Executor, listingId string, amount int) error {
	releaseSQL := `UPDATE shop_listings SET stock = stock + $1 WHERE id = $2 AND stock_enabled`
	_, err := executor.Exec(ctx, releaseSQL, amount, listingId)
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}

	return nil
}

func (sc *StockController) SetStock(ctx context.Context, listingId string, stock *int) error {
	var (
		sql  string
		args []any
	)

	if stock == nil {
		sql = `UPDATE shop_listings SET stock = NULL, stock_enabled = FALSE WHERE id = $1`
		args = []any{listingId}
	} else {
		if *stock < 0 {
			return &domain.ValidationError{Msg: "stock must not be negative"}
		}

		sql = `UPDATE shop_listings SET stock = $1, stock_enabled = TRUE WHERE id = $2`
		args = []any{*stock, listingId}
	}

	tag, err := sc.executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to set stock: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ListingNotFoundError{Msg: fmt.Sprintf("listing %s not found", listingId)}
	}

	return nil
}
