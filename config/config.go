package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything the program reads from the environment and .env.
type Config struct {
	App        AppConfig
	Restaurant RestaurantConfig
}

// AppConfig controls logging.
type AppConfig struct {
	Env      string
	LogLevel string
}

// RestaurantConfig holds what gets printed around the menus and the bill.
type RestaurantConfig struct {
	Name      string
	Address   string
	Currency  string // symbol only, e.g. "₹"
	MenuWidth int
}

const (
	DefaultName      = "SXC KITCHEN"
	DefaultAddress   = "Address: Maitighar, Kathmandu"
	DefaultCurrency  = "₹"
	DefaultMenuWidth = 50
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "dev"),
			LogLevel: getEnv("LOG_LEVEL", "warn"),
		},
		Restaurant: RestaurantConfig{
			Name:      getEnv("RESTAURANT_NAME", DefaultName),
			Address:   getEnv("RESTAURANT_ADDRESS", DefaultAddress),
			Currency:  getEnv("CURRENCY_SYMBOL", DefaultCurrency),
			MenuWidth: getEnvInt("MENU_WIDTH", DefaultMenuWidth),
		},
	}, nil
}

// DefaultRestaurant is the restaurant block used when nothing is configured.
func DefaultRestaurant() RestaurantConfig {
	return RestaurantConfig{
		Name:      DefaultName,
		Address:   DefaultAddress,
		Currency:  DefaultCurrency,
		MenuWidth: DefaultMenuWidth,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
