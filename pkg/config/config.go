package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the backtest core.
type Config struct {
	// Commission
	CommissionModel        string  // "zero", "fixed", "percent"
	CommissionRate         float64 // fixed: per share; percent: fraction of notional (0.001 = 10 bps)
	CommissionMinFee       float64 // clamp applied when > 0
	CommissionMaxFee       float64 // clamp applied when > 0
	CommissionScheduleFile string  // optional YAML file with per-exchange schedules

	// Defaults applied to signals when the strategy leaves them unset
	DefaultQuantity   int64
	DefaultStrategyID int

	// Exchange label stamped on simulated fills
	DefaultExchange string
}

// Load reads environment variables (optionally via .env) into Config.
func Load() (*Config, error) {
	// Ignore error so the app still starts when .env is missing.
	_ = godotenv.Load()

	return &Config{
		CommissionModel:        getEnv("COMMISSION_MODEL", "zero"),
		CommissionRate:         getEnvFloat("COMMISSION_RATE", 0),
		CommissionMinFee:       getEnvFloat("COMMISSION_MIN_FEE", 0),
		CommissionMaxFee:       getEnvFloat("COMMISSION_MAX_FEE", 0),
		CommissionScheduleFile: getEnv("COMMISSION_SCHEDULE_FILE", ""),
		DefaultQuantity:        int64(getEnvInt("DEFAULT_QUANTITY", 10000)),
		DefaultStrategyID:      getEnvInt("DEFAULT_STRATEGY_ID", 1),
		DefaultExchange:        getEnv("DEFAULT_EXCHANGE", "SIMULATED"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
