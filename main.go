package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"tiered-loan/config"
	httpLayer "tiered-loan/http"
	"tiered-loan/repository"
	"tiered-loan/service"
)

func main() {
	scenariosPath := flag.String("scenarios", "", "print reports for the scenarios in this YAML file and exit")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	reporter := service.NewReporter(cfg.Currency)

	if *scenariosPath != "" {
		if err := runScenarios(*scenariosPath, reporter); err != nil {
			logger.Fatalf("Failed to run scenarios: %v", err)
		}
		return
	}

	serve(cfg, reporter, logger)
}

func runScenarios(path string, reporter *service.Reporter) error {
	scenarios, err := config.LoadScenarios(path)
	if err != nil {
		return err
	}

	for _, sc := range scenarios {
		plan := sc.Plan()
		if err := service.CheckLimits(plan); err != nil {
			return fmt.Errorf("%s: %w", sc.Name, err)
		}
		results, err := service.ComputePlan(plan)
		if err != nil {
			return err
		}
		report, err := reporter.Summarize(plan, results)
		if err != nil {
			return err
		}
		if err := reporter.Write(os.Stdout, sc.Name, report); err != nil {
			return err
		}
	}
	return nil
}

func newCache(cfg *config.Config, logger *logrus.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, caching schedules in memory")
		return repository.NewMemoryCache(cfg.CacheTTL)
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		// el cache no es crítico: los fallos solo fuerzan el recálculo
		logger.Warnf("Redis at %s unreachable: %v", cfg.RedisAddr, err)
	}
	return cache
}

func serve(cfg *config.Config, reporter *service.Reporter, logger *logrus.Logger) {
	cache := newCache(cfg, logger)
	if closer, ok := cache.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warnf("Error closing cache: %v", err)
			}
		}()
	}

	amortizationService := service.NewAmortizationService(cache, reporter, logger)
	scheduleHandler := httpLayer.NewScheduleHandler(amortizationService, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(scheduleHandler, rateLimiter, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Error starting server: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
