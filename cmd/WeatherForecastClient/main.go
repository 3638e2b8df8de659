package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/client"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/config"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/render"
	"github.com/Nazarious-ucu/weather-forecast-app/pkg/logger"
)

const sourceConfigured = "CLIENT_LAT/CLIENT_LON"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [city]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(),
			"Without a city the client detects its position from CLIENT_LAT and CLIENT_LON.")
		flag.PrintDefaults()
	}
	verbose := flag.Bool("v", false, "log client activity to stderr")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && *verbose {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewClientConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid CLIENT_TIMEZONE %q: %v", cfg.Timezone, err)
	}

	l := logger.NewStderrLogger("weather-forecast-client")
	if *verbose {
		l = l.Level(zerolog.DebugLevel)
	}

	relay := client.NewRelayClient(&http.Client{}, cfg.RelayURL, l)

	var locator client.Geolocator
	if cfg.HasPosition() {
		locator = client.StaticLocator{Lat: *cfg.Lat, Lon: *cfg.Lon, Source: sourceConfigured}
	}

	store := client.NewStore(relay, locator, l)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if city := strings.Join(flag.Args(), " "); city != "" {
		store.SubmitLocationName(ctx, city)
	} else {
		store.Mount(ctx)
	}

	st := store.State()
	if err := render.NewText(os.Stdout, loc).Render(st); err != nil {
		log.Fatalf("failed to render weather: %v", err)
	}
	if st.Error != "" {
		os.Exit(1)
	}
}
