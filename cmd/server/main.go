package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cityresponse/internal/config"
	"cityresponse/internal/handlers"
	"cityresponse/internal/middleware"
	"cityresponse/internal/repositories/mongodb"
	"cityresponse/internal/services"
	"cityresponse/internal/utils"
	"cityresponse/pkg/cache"
	"cityresponse/pkg/database"
	"cityresponse/pkg/logger"
	"cityresponse/pkg/routing"
	"cityresponse/pkg/websocket"
	"cityresponse/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting " + cfg.App.Name)

	// MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	migrator := database.NewMigrator(db.Database)
	if err := migrator.Up(); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Redis is optional; everything degrades gracefully without it.
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("Redis unavailable; continuing without cache")
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	// Repositories
	var incidentCache mongodb.Cache
	if redisCache != nil {
		incidentCache = redisCache
	}
	incidentRepo := mongodb.NewIncidentRepository(db.Database, incidentCache)
	routeRepo := mongodb.NewRouteRepository(db.Database)
	notificationRepo := mongodb.NewNotificationRepository(db.Database)
	zoneRepo := mongodb.NewZoneRepository(db.Database)
	incidentWatcher := mongodb.NewIncidentWatcher(db.Database)

	// Routing provider
	provider, err := buildRouteProvider(cfg.Routing)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize routing provider")
	}
	log.WithField("provider", cfg.Routing.Provider).Info("Routing provider initialized")

	// Services
	notificationService := services.NewNotificationService(notificationRepo, log)

	classifierService, err := services.NewClassifierService(context.Background(), zoneRepo, cfg.Classifier, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to load zone catalog")
	}

	incidentService := services.NewIncidentService(incidentRepo, classifierService, notificationService, log)
	dispatchService := services.NewDispatchService(provider, incidentRepo, routeRepo, cfg.Routing, log)

	var lease services.PassLease
	if redisCache != nil {
		lease = redisCache
	}
	schedulerService := services.NewSchedulerService(incidentRepo, notificationRepo, notificationService, lease, cfg.Scheduler, log)
	if cfg.Scheduler.Enabled {
		schedulerService.Start()
		defer schedulerService.Stop()
	}

	// WebSocket hub fed by the store's change stream.
	hub := websocket.NewHub()
	go hub.Run()

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()

	events, err := incidentWatcher.Watch(watchCtx)
	if err != nil {
		log.WithError(err).Warn("Change stream unavailable; live incident updates disabled")
	} else {
		go func() {
			for event := range events {
				hub.BroadcastIncidentEvent(event)
			}
		}()
	}

	// HTTP server
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "version": cfg.App.Version}
		if err := db.Ping(); err != nil {
			status["status"] = "degraded"
			status["mongodb"] = err.Error()
		}
		if redisCache != nil {
			if err := redisCache.Ping(c.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["redis"] = err.Error()
			}
		}
		c.JSON(http.StatusOK, status)
	})

	incidentHandler := handlers.NewIncidentHandler(incidentService)
	dispatchHandler := handlers.NewDispatchHandler(dispatchService, routeRepo)
	zoneHandler := handlers.NewZoneHandler(classifierService)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	wsHandler := handlers.NewWebSocketHandler(hub, log)

	api := router.Group("/api/v1")
	routes.SetupIncidentRoutes(api, incidentHandler, dispatchHandler)
	routes.SetupDispatchRoutes(api, dispatchHandler)
	routes.SetupZoneRoutes(api, zoneHandler)
	routes.SetupNotificationRoutes(api, notificationHandler)
	routes.SetupWebSocketRoutes(api, wsHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.DefaultShutdownGracePeriod)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}

	log.Info("Server stopped")
}

func buildRouteProvider(cfg *config.RoutingConfig) (routing.RouteProvider, error) {
	switch cfg.Provider {
	case "google":
		if cfg.GoogleMaps.APIKey == "" {
			return nil, fmt.Errorf("google provider selected but GOOGLE_MAPS_API_KEY is empty")
		}
		return routing.NewGoogleMapsProvider(cfg.GoogleMaps.APIKey)
	case "osrm", "":
		return routing.NewOSRMProvider(cfg.OSRM.BaseURL, cfg.RequestTimeout), nil
	default:
		return nil, fmt.Errorf("unknown routing provider %q", cfg.Provider)
	}
}
