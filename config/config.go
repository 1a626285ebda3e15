package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
)

// AppConfig carries every runtime knob. Values come from the environment
// (godotenv loads .env in main) with sensible storefront defaults.
type AppConfig struct {
	Port           string
	AllowedOrigins []string
	CatalogPath    string
	SessionTTL     time.Duration
	AuthDelay      time.Duration
	Pricing        store.PricingConfig
}

// Load reads the configuration from the environment.
func Load() AppConfig {
	cfg := AppConfig{
		Port:           envOr("PORT", "8081"),
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3001"},
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		SessionTTL:     envDuration("SESSION_TTL", 24*time.Hour),
		AuthDelay:      envDuration("AUTH_SIMULATED_DELAY", 0),
		Pricing:        loadPricing(),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}

	return cfg
}

func loadPricing() store.PricingConfig {
	pricing := store.DefaultPricing()

	if v := os.Getenv("FREE_SHIPPING_THRESHOLD_CENTS"); v != "" {
		if cents, err := strconv.ParseInt(v, 10, 64); err == nil && cents >= 0 {
			pricing.FreeShippingThreshold = models.Cents(cents)
		} else {
			log.Printf("⚠️  Ignoring invalid FREE_SHIPPING_THRESHOLD_CENTS=%q", v)
		}
	}
	if v := os.Getenv("SHIPPING_FLAT_CENTS"); v != "" {
		if cents, err := strconv.ParseInt(v, 10, 64); err == nil && cents >= 0 {
			pricing.ShippingFlat = models.Cents(cents)
		} else {
			log.Printf("⚠️  Ignoring invalid SHIPPING_FLAT_CENTS=%q", v)
		}
	}
	if v := os.Getenv("TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 && rate < 1 {
			pricing.TaxRate = rate
		} else {
			log.Printf("⚠️  Ignoring invalid TAX_RATE=%q", v)
		}
	}

	return pricing
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️  Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return d
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
