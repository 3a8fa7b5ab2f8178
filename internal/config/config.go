// Package config loads server settings from the environment, with a .env
// file picked up when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	DatabaseURL      string
	StrategyTimerSec int
	MoveTimerSec     int
}

// Load reads the environment. DATABASE_URL may be empty; the server then
// runs without match persistence.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:             getString("ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StrategyTimerSec: getInt("STRATEGY_TIMER_SEC", 90),
		MoveTimerSec:     getInt("MOVE_TIMER_SEC", 60),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
