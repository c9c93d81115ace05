package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vyong1/fast-weather/internal/cache"
	"github.com/vyong1/fast-weather/internal/config"
	"github.com/vyong1/fast-weather/internal/weather"
	"github.com/vyong1/fast-weather/internal/wmo"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A .env file may override file locations; absence is fine.
	_ = godotenv.Load()

	colorize := os.Getenv("NO_COLOR") == ""

	cfg, err := config.Load(getEnvOrDefault("FASTWEATHER_CONFIG", config.DefaultPath))
	if err != nil {
		return err
	}

	codes, err := wmo.Load(getEnvOrDefault("FASTWEATHER_WMO", wmo.DefaultPath))
	if err != nil {
		return err
	}

	store, err := cache.Open(getEnvOrDefault("FASTWEATHER_CACHE", cache.DefaultPath))
	if err != nil {
		return err
	}
	defer store.Close()

	cols := weather.Columns(colorize)
	client := weather.NewClient(store)

	forecast, err := client.Fetch(cfg, weather.FieldNames(cols))
	if err != nil {
		return err
	}

	table, err := weather.Assemble(forecast, cols, codes, cfg.Location, colorize)
	if err != nil {
		return err
	}

	fmt.Print(weather.Render(table))
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
