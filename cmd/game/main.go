// cmd/game/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dead-end/internal/app"
	"dead-end/internal/defs"
	"dead-end/internal/server"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Балансные таблицы можно подменить без перекомпиляции.
	if path := os.Getenv("TOWER_DEFS"); path != "" {
		if err := defs.LoadTowerDefinitions(path); err != nil {
			log.Fatal().Err(err).Msg("failed to load tower definitions")
		}
	}
	if path := os.Getenv("ENEMY_DEFS"); path != "" {
		if err := defs.LoadEnemyDefinitions(path); err != nil {
			log.Fatal().Err(err).Msg("failed to load enemy definitions")
		}
	}
	if path := os.Getenv("WAVE_DEFS"); path != "" {
		if err := defs.LoadWaveTable(path); err != nil {
			log.Fatal().Err(err).Msg("failed to load wave table")
		}
	}

	seed := int64(0) // 0 — недетерминированный матч
	if s := os.Getenv("SEED"); s != "" {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Fatal().Str("seed", s).Msg("SEED must be an integer")
		}
		seed = parsed
	}

	game := app.NewGame(app.DefaultMap(), seed, log.Logger)
	hub := server.NewHub(game, log.Logger)
	go hub.Run(context.Background())

	addr := ":" + getEnv("PORT", "8080")
	log.Info().Str("addr", addr).Int64("seed", seed).Msg("starting dead-end server")
	if err := http.ListenAndServe(addr, server.NewRouter(hub, log.Logger)); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
