// Package server boots the application: configuration, datastores, the
// payment gateway, background workers and the HTTP listener, then shuts
// everything down in reverse on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/bistro/app/jobs"
	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/routes"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/pkg/cache"
	"github.com/shashiranjanraj/bistro/pkg/database"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/payment"
	"github.com/shashiranjanraj/bistro/pkg/queue"
	"github.com/shashiranjanraj/bistro/pkg/reqid"
	"github.com/shashiranjanraj/bistro/pkg/router"
	"github.com/shashiranjanraj/bistro/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Start boots everything and blocks until the process is signalled.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Setup()
	defer logger.Close()

	if err := database.Connect(); err != nil {
		return fmt.Errorf("mongo: %w", err)
	}

	// The cache is an optimization; without Redis every read just goes
	// to Mongo.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, running without cache", "error", err)
	}

	storage.Connect(config.StorageDefault(), config.StorageS3Bucket())
	payment.Setup(config.StripeSecret())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startQueue(ctx)

	gateway := payment.NewStripeGateway(config.Currency())
	paymentService := services.NewPaymentService(
		repositories.NewPaymentRepository(),
		repositories.NewCartRepository(),
		gateway,
		dispatchConfirmation,
	)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)
	r.HandleFunc("/metrics", metrics.Handler())
	routes.RegisterAPI(r, paymentService)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bistro boss api listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongo disconnect", "error", err)
	}
	return nil
}

// startQueue registers job types, picks a driver (Redis when reachable,
// in-process otherwise) and starts the workers.
func startQueue(ctx context.Context) {
	jobs.RegisterJobs()

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-process queue", "error", err)
		rdb.Close()
		queue.SetDriver(queue.NewMemoryDriver())
	} else {
		queue.SetDriver(queue.NewRedisDriver(rdb))
	}

	queue.StartWorkers(ctx, 4)
}

// dispatchConfirmation queues the order confirmation email. Best effort:
// a full queue is logged, never surfaced to the buyer.
func dispatchConfirmation(ctx context.Context, p *models.Payment) error {
	return queue.Dispatch(&jobs.PaymentConfirmation{
		Email:         p.Email,
		TransactionID: p.TransactionID,
		Price:         p.Price,
		Items:         len(p.MenuItemIDs),
	})
}
