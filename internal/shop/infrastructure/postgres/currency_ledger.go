package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

type CurrencyLedger struct {
	querier database.Querier
}

func NewCurrencyLedger(querier database.Querier) *CurrencyLedger {
	return &CurrencyLedger{
		querier: querier,
	}
}

func (cl *CurrencyLedger) Debit(ctx context.Context, executor database.Executor, playerId string, amount int64) error {
	if amount < 0 {
		return &domain.ValidationError{Msg: "debit amount must not be negative"}
	} else if amount == 0 {
		return nil
	}

	debitSQL := `UPDATE player_balances SET balance = balance - $1 WHERE player_id = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitSQL, amount, playerId)
	if err != nil {
		return fmt.Errorf("failed to debit player balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientFundsError{Msg: "insufficient funds"}
	}

	return nil
}

func (cl *CurrencyLedger) Credit(ctx context.Context, executor database.Executor, playerId string, amount int64) error {
	if amount < 0 {
		return &domain.ValidationError{Msg: "credit amount must not be negative"}
	} else if amount == 0 {
		return nil
	}

	creditSQL := `INSERT INTO player_balances (player_id, balance) VALUES ($1, $2)
ON CONFLICT (player_id) DO UPDATE SET balance = player_balances.balance + EXCLUDED.balance`
	_, err := executor.Exec(ctx, creditSQL, playerId, amount)
	if err != nil {
		return fmt.Errorf("failed to credit player balance: %w", err)
	}

	return nil
}

// Balance returns zero for players that never held currency.
func (cl *CurrencyLedger) Balance(ctx context.Context, playerId string) (int64, error) {
	balanceSQL := `SELECT balance FROM player_balances WHERE player_id = $1`

	var balance int64
	err := cl.querier.QueryRow(ctx, balanceSQL, playerId).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to fetch player balance: %w", err)
	}

	return balance, nil
}
