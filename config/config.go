// Package config loads portal configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds company branding used on exported documents plus the default
// pricing settings applied to new quotes.
type Config struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string

	// DefaultTaxRate is a percent (8.25 means 8.25%).
	DefaultTaxRate float64

	// DefaultValidDays is the validity window for new quotes.
	DefaultValidDays int
}

var (
	loadOnce sync.Once
	loaded   Config
)

// Get returns the process-wide configuration, loading it on first use.
func Get() Config {
	loadOnce.Do(func() {
		loaded = Load()
	})
	return loaded
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() Config {
	// Missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	return Config{
		CompanyName:      envStr("COMPANY_NAME", "VoltEdge Electrical Contractors"),
		CompanyAddress:   envStr("COMPANY_ADDRESS", "4200 Industry Dr, Austin, TX 78744"),
		CompanyEmail:     envStr("COMPANY_EMAIL", "quotes@voltedge.example.com"),
		CompanyPhone:     envStr("COMPANY_PHONE", "(512) 555-0100"),
		DefaultTaxRate:   envFloat("DEFAULT_TAX_RATE", 8.25),
		DefaultValidDays: envInt("DEFAULT_VALID_DAYS", 30),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
