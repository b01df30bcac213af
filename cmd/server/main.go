package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/database"
	"easytrack/internal/handlers"
	"easytrack/internal/kafka"
	"easytrack/internal/logger"
	"easytrack/internal/maprender"
	"easytrack/internal/models"
	"easytrack/internal/redis"
	"easytrack/internal/routing"
	"easytrack/internal/services"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New("info").WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)

	// Storage
	db, err := database.Connect(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Postgres")
	}
	defer db.Close()

	redisClient, err := redis.Connect(&cfg.Redis, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	if err := redisClient.CacheWarmingContracts(db); err != nil {
		log.WithError(err).Warn("Cache warming failed")
	}

	// Kafka
	kafkaMetrics := kafka.NewKafkaMetrics()

	dlqProducer, err := kafka.NewDLQProducer(&cfg.Kafka, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create DLQ producer")
	}
	defer dlqProducer.Close()

	producer, err := kafka.NewProducer(&cfg.Kafka, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create producer")
	}
	defer producer.Close()

	consumer, err := kafka.NewConsumer(&cfg.Kafka, log, dlqProducer, kafkaMetrics)
	if err != nil {
		log.WithError(err).Fatal("Failed to create consumer")
	}

	lagMonitor, err := kafka.NewLagMonitor(&cfg.Kafka, log)
	if err != nil {
		log.WithError(err).Warn("Lag monitor unavailable")
	} else {
		lagMonitor.Start(kafkaMetrics)
		defer lagMonitor.Stop()
	}

	// Tracking core
	routingProvider := routing.NewOSRMProvider(&cfg.Routing, log)
	mapProvider := maprender.NewMemoryProvider()
	renderer := maprender.NewRenderer(mapProvider, routingProvider, log, cfg.Tracking.MapZoom, cfg.Tracking.MapPaddingDegreesE)

	contractService := services.NewContractService(db, redisClient, log, cfg.Tracking.FetchTimeoutSecs)
	directionsService := services.NewDirectionsService(routingProvider, redisClient, log, cfg.Tracking.CooldownSeconds)
	trackerService := services.NewTrackerService(contractService, directionsService, renderer, consumer, producer, log)

	consumer.RegisterHandler(models.EventContractUpdated, trackerService.HandleContractEvent)
	if err := consumer.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start consumer")
	}

	// HTTP
	kafkaMetricsService := services.NewKafkaMetricsService(kafkaMetrics)
	redisService := services.NewRedisService(redisClient, log)

	mux := http.NewServeMux()
	handlers.SetupTrackingRoutes(mux, handlers.NewTrackingHandler(trackerService, contractService, log))
	handlers.SetupMetricsRoutes(mux,
		handlers.NewKafkaMetricsHandler(kafkaMetricsService, log),
		handlers.NewRedisMetricsHandler(redisService, log),
	)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")

	trackerService.Stop()
	if err := consumer.Stop(); err != nil {
		log.WithError(err).Error("Failed to stop consumer")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}

	log.Info("Shutdown complete")
}
