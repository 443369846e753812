package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Lexv0lk/game-shop/internal/pkg/jwt"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/bootstrap"
	"github.com/google/uuid"
)

// shop-token signs a player token with the shop's JWT secret for local runs
// against the HTTP API.
func main() {
	playerId := flag.String("player", "", "player id (uuid)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if _, err := uuid.Parse(*playerId); err != nil {
		logging.StdoutLogger.Error("invalid player id", "player_id", *playerId)
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logging.StdoutLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(cfg.JwtSecret), *playerId, *ttl)
	if err != nil {
		logging.StdoutLogger.Error("failed to issue token", "error", err.Error())
		os.Exit(1)
	}

	fmt.Println(token)
}
