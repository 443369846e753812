package application_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/application"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/Lexv0lk/game-shop/internal/shop/infrastructure/postgres"
	"github.com/Lexv0lk/game-shop/migrations"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

type shopFixture struct {
	pool       *pgxpool.Pool
	ledger     *postgres.CurrencyLedger
	listings   *postgres.ListingsRepository
	orders     *application.OrderCase
	catalog    *application.CatalogCase
	categories *application.CategoryCase
}

func startShop(t *testing.T) *shopFixture {
	t.Helper()

	pg, err := tcpostgres.Run(
		t.Context(),
		"postgres:16-alpine",
		tcpostgres.WithDatabase("game_shop"),
		tcpostgres.WithUsername("admin"),
		tcpostgres.WithPassword("password"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	connStr, err := pg.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(t.Context(), connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.Eventually(t, func() bool {
		timeCtx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
		defer cancel()
		return pool.Ping(timeCtx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	require.NoError(t, database.MigrateDatabase(connStr, migrations.FS, "."))

	logger := logging.NewStdoutLogger(slog.LevelError)
	txManager := database.NewDelegateTxManager(pool, logger)

	listingsRepository := postgres.NewListingsRepository(pool)
	ordersRepository := postgres.NewOrdersRepository(pool)
	categoriesRepository := postgres.NewCategoriesRepository(pool)
	stockController := postgres.NewStockController(pool)
	ledger := postgres.NewCurrencyLedger(pool)

	orderCase := application.NewOrderCase(txManager, listingsRepository, ordersRepository, stockController, ledger, postgres.NewItemDeliveryQueue(), logger)

	return &shopFixture{
		pool:       pool,
		ledger:     ledger,
		listings:   listingsRepository,
		orders:     orderCase,
		catalog:    application.NewCatalogCase(txManager, listingsRepository, categoriesRepository, ordersRepository, stockController, orderCase, logger),
		categories: application.NewCategoryCase(txManager, categoriesRepository, listingsRepository, logger),
	}
}

func (f *shopFixture) newListing(t *testing.T, price int64, stock *int, categoryIds ...string) domain.Listing {
	t.Helper()

	listing, err := f.catalog.CreateListing(t.Context(), domain.Listing{
		GameServerId: uuid.NewString(),
		Name:         "listing " + uuid.NewString()[:8],
		Price:        price,
		Items:        []domain.ListingItem{{Code: "gold", Amount: 10}},
		CategoryIds:  categoryIds,
		Stock:        stock,
		StockEnabled: stock != nil,
	})
	require.NoError(t, err)

	return listing
}

func (f *shopFixture) newPlayer(t *testing.T, balance int64) string {
	t.Helper()

	playerId := uuid.NewString()
	require.NoError(t, f.ledger.Credit(t.Context(), f.pool, playerId, balance))

	return playerId
}

func (f *shopFixture) stockOf(t *testing.T, listingId string) *int {
	t.Helper()

	listing, err := f.listings.GetListing(t.Context(), listingId)
	require.NoError(t, err)

	return listing.Stock
}

// buyConcurrently starts every purchase at the same moment and returns the
// number of successful orders and the errors of the failed ones.
func (f *shopFixture) buyConcurrently(t *testing.T, listingId string, players []string, amount int) (int, []error) {
	t.Helper()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		start     = make(chan struct{})
		successes int
		failures  []error
	)

	for _, playerId := range players {
		wg.Add(1)
		go func(playerId string) {
			defer wg.Done()
			<-start

			_, err := f.orders.CreateOrder(t.Context(), listingId, playerId, amount)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			successes++
		}(playerId)
	}

	close(start)
	wg.Wait()

	return successes, failures
}

func (f *shopFixture) paidOrdersOf(t *testing.T, listingId string) int {
	t.Helper()

	var paid int
	err := f.pool.QueryRow(t.Context(),
		`SELECT count(*) FROM shop_orders WHERE listing_id = $1 AND status = 'PAID'`, listingId).Scan(&paid)
	require.NoError(t, err)

	return paid
}

func ptr[T any](v T) *T {
	return &v
}

func TestShopAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	f := startShop(t)

	t.Run("last unit is sold exactly once", func(t *testing.T) {
		listing := f.newListing(t, 10, ptr(1))

		players := make([]string, 10)
		for i := range players {
			players[i] = f.newPlayer(t, 100)
		}

		successes, failures := f.buyConcurrently(t, listing.Id, players, 1)

		assert.Equal(t, 1, successes)
		require.Len(t, failures, 9)
		for _, err := range failures {
			assert.ErrorIs(t, err, &domain.InsufficientStockError{})
		}
		assert.Equal(t, 0, *f.stockOf(t, listing.Id))
	})

	t.Run("partial contention never oversells", func(t *testing.T) {
		listing := f.newListing(t, 10, ptr(5))

		players := make([]string, 5)
		for i := range players {
			players[i] = f.newPlayer(t, 100)
		}

		successes, failures := f.buyConcurrently(t, listing.Id, players, 2)

		assert.LessOrEqual(t, successes, 2)
		assert.Len(t, failures, 5-successes)
		stock := *f.stockOf(t, listing.Id)
		assert.Equal(t, 5-2*successes, stock)
		assert.GreaterOrEqual(t, stock, 0)
	})

	t.Run("unlimited listing serves everyone", func(t *testing.T) {
		listing := f.newListing(t, 1, nil)

		players := make([]string, 20)
		for i := range players {
			players[i] = f.newPlayer(t, 10)
		}

		successes, failures := f.buyConcurrently(t, listing.Id, players, 10)

		assert.Equal(t, 20, successes)
		assert.Empty(t, failures)
		assert.Nil(t, f.stockOf(t, listing.Id))
	})

	t.Run("cancel restores stock and balance once", func(t *testing.T) {
		listing := f.newListing(t, 30, ptr(3))
		playerId := f.newPlayer(t, 100)

		order, err := f.orders.CreateOrder(t.Context(), listing.Id, playerId, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, *f.stockOf(t, listing.Id))

		balance, err := f.ledger.Balance(t.Context(), playerId)
		require.NoError(t, err)
		assert.Equal(t, int64(40), balance)

		canceled, err := f.orders.CancelOrder(t.Context(), order.Id)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCanceled, canceled.Status)
		assert.Equal(t, 3, *f.stockOf(t, listing.Id))

		balance, err = f.ledger.Balance(t.Context(), playerId)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)

		_, err = f.orders.CancelOrder(t.Context(), order.Id)
		assert.ErrorIs(t, err, &domain.InvalidOrderStateError{})
		assert.Equal(t, 3, *f.stockOf(t, listing.Id))
	})

	t.Run("insufficient funds leaves stock untouched", func(t *testing.T) {
		listing := f.newListing(t, 50, ptr(4))
		playerId := f.newPlayer(t, 60)

		_, err := f.orders.CreateOrder(t.Context(), listing.Id, playerId, 2)
		assert.ErrorIs(t, err, &domain.InsufficientFundsError{})
		assert.Equal(t, 4, *f.stockOf(t, listing.Id))
	})

	t.Run("claims run oldest first and only once", func(t *testing.T) {
		expensive := f.newListing(t, 100, nil)
		cheap := f.newListing(t, 33, nil)
		playerId := f.newPlayer(t, 1000)

		first, err := f.orders.CreateOrder(t.Context(), expensive.Id, playerId, 1)
		require.NoError(t, err)
		second, err := f.orders.CreateOrder(t.Context(), cheap.Id, playerId, 1)
		require.NoError(t, err)

		result, err := f.orders.ClaimOrders(t.Context(), playerId, false)
		require.NoError(t, err)
		require.Len(t, result.Claimed, 1)
		assert.Equal(t, first.Id, result.Claimed[0].Id)
		assert.Equal(t, int64(100), result.Claimed[0].TotalPrice)

		result, err = f.orders.ClaimOrders(t.Context(), playerId, true)
		require.NoError(t, err)
		require.Len(t, result.Claimed, 1)
		assert.Equal(t, second.Id, result.Claimed[0].Id)

		result, err = f.orders.ClaimOrders(t.Context(), playerId, true)
		require.NoError(t, err)
		assert.Empty(t, result.Claimed)
		assert.Equal(t, domain.NoPendingOrdersMessage, result.Message)

		_, err = f.orders.CancelOrder(t.Context(), first.Id)
		assert.ErrorIs(t, err, &domain.InvalidOrderStateError{})

		var deliveries int
		err = f.pool.QueryRow(t.Context(),
			`SELECT count(*) FROM shop_item_deliveries WHERE player_id = $1`, playerId).Scan(&deliveries)
		require.NoError(t, err)
		assert.Equal(t, 2, deliveries)
	})

	t.Run("category filter includes grandchildren", func(t *testing.T) {
		weapons, err := f.categories.CreateCategory(t.Context(), "Weapons", "⚔", nil)
		require.NoError(t, err)
		melee, err := f.categories.CreateCategory(t.Context(), "Melee", "🗡", &weapons.Id)
		require.NoError(t, err)
		swords, err := f.categories.CreateCategory(t.Context(), "Swords", "🗡", &melee.Id)
		require.NoError(t, err)
		armor, err := f.categories.CreateCategory(t.Context(), "Armor", "🛡", nil)
		require.NoError(t, err)

		sword := f.newListing(t, 10, nil, swords.Id)

		found, err := f.catalog.SearchListings(t.Context(), domain.ListingFilter{
			GameServerId: sword.GameServerId,
			CategoryIds:  []string{weapons.Id},
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, sword.Id, found[0].Id)

		found, err = f.catalog.SearchListings(t.Context(), domain.ListingFilter{
			GameServerId: sword.GameServerId,
			CategoryIds:  []string{armor.Id},
		})
		require.NoError(t, err)
		assert.Empty(t, found)

		_, err = f.categories.MoveCategory(t.Context(), weapons.Id, &swords.Id)
		assert.ErrorIs(t, err, &domain.ValidationError{})

		require.NoError(t, f.categories.DeleteCategory(t.Context(), melee.Id))

		tree, err := f.categories.GetCategoryTree(t.Context())
		require.NoError(t, err)

		roots := make(map[string]domain.CategoryNode, len(tree))
		for _, node := range tree {
			roots[node.Id] = node
		}
		require.Contains(t, roots, swords.Id)
		assert.Equal(t, 1, roots[swords.Id].ListingCount)
		assert.Empty(t, roots[weapons.Id].Children)
	})

	t.Run("drafting a listing refunds paid orders", func(t *testing.T) {
		listing := f.newListing(t, 25, ptr(2))
		playerId := f.newPlayer(t, 25)

		order, err := f.orders.CreateOrder(t.Context(), listing.Id, playerId, 1)
		require.NoError(t, err)

		require.NoError(t, f.catalog.SetDraft(t.Context(), listing.Id, true))

		balance, err := f.ledger.Balance(t.Context(), playerId)
		require.NoError(t, err)
		assert.Equal(t, int64(25), balance)
		assert.Equal(t, 2, *f.stockOf(t, listing.Id))

		_, err = f.orders.CancelOrder(t.Context(), order.Id)
		assert.ErrorIs(t, err, &domain.InvalidOrderStateError{})

		_, err = f.orders.CreateOrder(t.Context(), listing.Id, playerId, 1)
		assert.ErrorIs(t, err, &domain.ValidationError{})
	})

	t.Run("claiming all returns pending orders oldest first", func(t *testing.T) {
		playerId := f.newPlayer(t, 1000)

		expected := make([]string, 0, 3)
		for _, price := range []int64{100, 33, 7} {
			order, err := f.orders.CreateOrder(t.Context(), f.newListing(t, price, nil).Id, playerId, 1)
			require.NoError(t, err)
			expected = append(expected, order.Id)
		}

		result, err := f.orders.ClaimOrders(t.Context(), playerId, true)
		require.NoError(t, err)

		claimed := make([]string, 0, len(result.Claimed))
		for _, order := range result.Claimed {
			assert.Equal(t, domain.OrderStatusClaimed, order.Status)
			claimed = append(claimed, order.Id)
		}
		assert.Equal(t, expected, claimed)
	})

	t.Run("concurrent claims deliver every order once", func(t *testing.T) {
		playerId := f.newPlayer(t, 1000)
		listing := f.newListing(t, 10, nil)

		orderIds := make(map[string]struct{}, 6)
		for range 6 {
			order, err := f.orders.CreateOrder(t.Context(), listing.Id, playerId, 1)
			require.NoError(t, err)
			orderIds[order.Id] = struct{}{}
		}

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			start   = make(chan struct{})
			claimed []string
			errs    []error
		)

		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start

				result, err := f.orders.ClaimOrders(t.Context(), playerId, true)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, err)
					return
				}
				for _, order := range result.Claimed {
					claimed = append(claimed, order.Id)
				}
			}()
		}

		close(start)
		wg.Wait()

		require.Empty(t, errs)
		assert.Len(t, claimed, len(orderIds))
		for _, id := range claimed {
			assert.Contains(t, orderIds, id)
		}

		rows, err := f.pool.Query(t.Context(),
			`SELECT order_id::text, count(*) FROM shop_item_deliveries WHERE player_id = $1 GROUP BY order_id`, playerId)
		require.NoError(t, err)
		defer rows.Close()

		delivered := 0
		for rows.Next() {
			var (
				orderId string
				count   int
			)
			require.NoError(t, rows.Scan(&orderId, &count))
			assert.Equal(t, 1, count, orderId)
			delivered++
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, len(orderIds), delivered)
	})

	t.Run("purchases and cancellations interleave without negative stock", func(t *testing.T) {
		listing := f.newListing(t, 10, ptr(3))

		players := make([]string, 12)
		for i := range players {
			players[i] = f.newPlayer(t, 100)
		}

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			start = make(chan struct{})
			errs  []error
		)

		for _, playerId := range players {
			wg.Add(1)
			go func(playerId string) {
				defer wg.Done()
				<-start

				order, err := f.orders.CreateOrder(t.Context(), listing.Id, playerId, 1)
				if err == nil {
					_, err = f.orders.CancelOrder(t.Context(), order.Id)
				}
				if err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}(playerId)
		}

		close(start)
		wg.Wait()

		for _, err := range errs {
			assert.ErrorIs(t, err, &domain.InsufficientStockError{})
		}
		assert.Equal(t, 3, *f.stockOf(t, listing.Id))
		assert.Zero(t, f.paidOrdersOf(t, listing.Id))

		for _, playerId := range players {
			balance, err := f.ledger.Balance(t.Context(), playerId)
			require.NoError(t, err)
			assert.Equal(t, int64(100), balance)
		}
	})

	t.Run("drafting during purchases leaves no paid orders", func(t *testing.T) {
		listing := f.newListing(t, 10, nil)

		players := make([]string, 10)
		for i := range players {
			players[i] = f.newPlayer(t, 10)
		}

		var (
			wg       sync.WaitGroup
			draftErr error
			start    = make(chan struct{})
		)

		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			draftErr = f.catalog.SetDraft(t.Context(), listing.Id, true)
		}()

		var (
			successes int
			failures  []error
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			successes, failures = f.buyConcurrently(t, listing.Id, players, 1)
		}()

		close(start)
		wg.Wait()

		require.NoError(t, draftErr)
		assert.Len(t, failures, len(players)-successes)
		for _, err := range failures {
			assert.ErrorIs(t, err, &domain.ValidationError{})
		}
		assert.Zero(t, f.paidOrdersOf(t, listing.Id))

		for _, playerId := range players {
			balance, err := f.ledger.Balance(t.Context(), playerId)
			require.NoError(t, err)
			assert.Equal(t, int64(10), balance)
		}
	})

	t.Run("missing listing", func(t *testing.T) {
		playerId := f.newPlayer(t, 10)

		_, err := f.orders.CreateOrder(t.Context(), uuid.NewString(), playerId, 1)
		assert.True(t, errors.Is(err, &domain.ListingNotFoundError{}))
	})
}
