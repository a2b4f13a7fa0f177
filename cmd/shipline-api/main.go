package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipline/internal/config"
	httptransport "shipline/internal/http"
	"shipline/internal/infra"
	"shipline/internal/modules/order"
	"shipline/internal/modules/product"
	"shipline/internal/modules/tracking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := infra.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	productStore := product.NewStore(dbPool)
	productCache := product.NewCache(redisClient)
	productSvc := product.NewService(productStore, productCache)

	orderStore := order.NewStore(dbPool)
	trackingStore := tracking.NewStore(dbPool)

	// Progression goroutines live under the signal context, not under any
	// request; each order gets exactly one run at creation.
	runner := tracking.NewRunner(ctx, orderStore, trackingStore, cfg.Tracking.StepDelay(), log)

	orderSvc := order.NewService(orderStore, productSvc, runner)
	trackingSvc := tracking.NewService(trackingStore, orderStore)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Product:  productSvc,
		Order:    orderSvc,
		Tracking: trackingSvc,
		Log:      log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}
