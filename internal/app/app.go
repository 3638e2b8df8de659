package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/weather-forecast-app/docs"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/config"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/handlers/weather"
	loggerT "github.com/Nazarious-ucu/weather-forecast-app/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-forecast-app/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/weather-forecast-app/internal/services/weather"
	fLogger "github.com/Nazarious-ucu/weather-forecast-app/pkg/logger"
)

const (
	timeoutDuration = 5 * time.Second
	corsMaxAge      = 300
)

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService *serviceWeather.ServiceProvider

	Router     *gin.Engine
	Handler    http.Handler
	Srv        *http.Server
	fileLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

// New prepares a new App with given config, zerolog logger, and metrics.
func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start builds the relay, serves it, and blocks until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	srvContainer := a.Init()

	errCh := make(chan error, 1)
	go func() {
		a.l.Info().
			Str("address", srvContainer.Srv.Addr).
			Bool("api_key_configured", serviceWeather.KeyUsable(a.cfg.OpenWeatherMap.APIKey)).
			Msg("server running")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping weather relay")
	case err, ok := <-errCh:
		if ok && err != nil {
			a.l.Error().Err(err).Msg("HTTP server failed")
			_ = a.Shutdown(srvContainer)
			return err
		}
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown stops the HTTP server and syncs the upstream log.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping weather relay…")

	if srvContainer.fileLogger != nil {
		defer func(logger *zap.Logger) {
			if err := logger.Sync(); err != nil {
				a.l.Error().Err(err).Msg("failed to sync file logger")
			}
		}(srvContainer.fileLogger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("HTTP shutdown error")
		return err
	}
	a.l.Info().Msg("shutdown complete")
	return nil
}

// Init wires the relay service, router and HTTP server without starting anything.
func (a *App) Init() ServiceContainer {
	a.l.Info().
		Str("port", a.cfg.Server.Port).
		Str("provider_url", a.cfg.OpenWeatherMap.URL).
		Bool("breaker_enabled", a.cfg.Breaker.Enabled).
		Msg("initializing weather relay")

	httpClient := &http.Client{}
	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create upstream file logger, upstream calls will not be logged")
	} else {
		httpClient.Transport = loggerT.NewRoundTripper(fileLogger)
	}

	weatherService := a.newWeatherService(httpClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.m.HTTPMiddleware())
	a.registerRoutes(router, weatherService)

	handler := cors.Handler(cors.Options{
		AllowedOrigins: a.cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         corsMaxAge,
	})(router)

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     handler,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		Router:         router,
		Handler:        handler,
		Srv:            httpServer,
		fileLogger:     fileLogger,
	}
}

func (a *App) newWeatherService(httpClient *http.Client) *serviceWeather.ServiceProvider {
	apiKey := a.cfg.OpenWeatherMap.APIKey

	var upstream serviceWeather.Client = serviceWeather.NewClientOpenWeatherMap(
		apiKey,
		a.cfg.OpenWeatherMap.URL,
		a.cfg.OpenWeatherMap.GeoURL,
		httpClient,
		a.l,
	)

	if a.cfg.Breaker.Enabled {
		upstream = serviceWeather.NewBreakerClient("OpenWeather", serviceWeather.BreakerConfig{
			TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
			TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
			RepeatNumber: a.cfg.Breaker.RepeatNumber,
		}, upstream)
	}

	upstream = serviceWeather.NewMetricsDecorator(upstream, a.m.UpstreamCollector())

	return serviceWeather.NewService(a.l, func() bool {
		return serviceWeather.KeyUsable(apiKey)
	}, upstream)
}

func (a *App) registerRoutes(router *gin.Engine, svc *serviceWeather.ServiceProvider) {
	apiKey := a.cfg.OpenWeatherMap.APIKey
	weatherHandler := weather.NewHandler(svc, func() string { return apiKey }, a.l)

	api := router.Group("/api")
	{
		api.GET("/weather/:location", weatherHandler.GetWeather)
		api.GET("/weather/coords/:lat/:lon", weatherHandler.GetWeatherByCoords)
		api.GET("/location/:lat/:lon", weatherHandler.GetLocationName)
		api.GET("/test", weatherHandler.GetDiagnostics)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
}
