package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/app"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/config"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-forecast-app/pkg/logger"
)

// @title Weather Forecast API
// @version 1.0
// @description Relays location queries to OpenWeatherMap and returns current conditions with the 5 day forecast
// @host localhost:5000
// @BasePath /api/
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, "weather-forecast-api")
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	metr := metrics.NewMetrics("weather-forecast-api")

	application := app.New(*cfg, l, metr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panic(err)
	}
}
