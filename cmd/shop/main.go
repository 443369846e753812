package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/bootstrap"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logging.StdoutLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger := logging.NewStdoutLogger(cfg.LogLevel)

	app := bootstrap.NewShopApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("shop service stopped with error", "error", err.Error())
		return
	}
}
