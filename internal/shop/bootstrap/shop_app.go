package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/pkg/jwt"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/application"
	httpwrap "github.com/Lexv0lk/game-shop/internal/shop/infrastructure/http"
	"github.com/Lexv0lk/game-shop/internal/shop/infrastructure/postgres"
	"github.com/Lexv0lk/game-shop/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 5 * time.Second
	migrationsDir   = "."
)

type ShopApp struct {
	cfg    ShopConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewShopApp(cfg ShopConfig, logger logging.Logger) *ShopApp {
	return &ShopApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *ShopApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.FS, migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	router := gin.Default()
	httpwrap.RegisterRoutes(router,
		httpwrap.NewAuthMiddleware(a.cfg.JwtSecret, jwt.NewJWTTokenParser(), logger),
		buildHandlers(dbpool, logger),
	)

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", a.cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *ShopApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}
}

func buildHandlers(dbpool *pgxpool.Pool, logger logging.Logger) httpwrap.Handlers {
	txManager := database.NewDelegateTxManager(dbpool, logger)

	listingsRepository := postgres.NewListingsRepository(dbpool)
	ordersRepository := postgres.NewOrdersRepository(dbpool)
	categoriesRepository := postgres.NewCategoriesRepository(dbpool)
	stockController := postgres.NewStockController(dbpool)
	currencyLedger := postgres.NewCurrencyLedger(dbpool)
	itemDeliveryQueue := postgres.NewItemDeliveryQueue()

	orderCase := application.NewOrderCase(txManager, listingsRepository, ordersRepository, stockController, currencyLedger, itemDeliveryQueue, logger)
	catalogCase := application.NewCatalogCase(txManager, listingsRepository, categoriesRepository, ordersRepository, stockController, orderCase, logger)
	categoryCase := application.NewCategoryCase(txManager, categoriesRepository, listingsRepository, logger)

	return httpwrap.Handlers{
		Orders:     httpwrap.NewOrderHandler(orderCase, logger),
		Catalog:    httpwrap.NewCatalogHandler(catalogCase, logger),
		Categories: httpwrap.NewCategoryHandler(categoryCase, logger),
	}
}
