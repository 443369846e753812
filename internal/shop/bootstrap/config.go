package bootstrap

import (
	"errors"
	"log/slog"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/pkg/env"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
)

type ShopConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string
	LogLevel   slog.Level
}

// LoadConfig starts from local development defaults and overrides them from
// the environment.
func LoadConfig() (ShopConfig, error) {
	cfg := ShopConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "game_shop",
			SSlEnabled: false,
		},
		HttpPort: ":8080",
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSLEnabled, &cfg.DbSettings.SSlEnabled)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)

	logLevel := "info"
	env.TrySetFromEnv(env.EnvLogLevel, &logLevel)

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return ShopConfig{}, err
	}
	cfg.LogLevel = level

	if cfg.JwtSecret == "" {
		return ShopConfig{}, errors.New("jwt secret is not set")
	}

	return cfg, nil
}
