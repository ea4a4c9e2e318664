package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marketx/internal/config"
	"marketx/internal/core/auth"
	"marketx/internal/core/product"
	"marketx/internal/logger"
	"marketx/internal/storage/postgres"
	"marketx/internal/transport/rest"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		panic("FATAL: JWT_SECRET is mandatory for Server!")
	}

	dbPool, err := postgres.InitDB(cfg, log)
	if err != nil {
		log.Error("failed to init DB", "error", err)
		return
	}
	defer dbPool.Close()

	userRepo := postgres.NewUserRepository(dbPool, cfg.DBAcquireTimeout)
	productRepo := postgres.NewProductRepository(dbPool, cfg.DBAcquireTimeout)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	authService := auth.NewService(userRepo, tokens)
	productService := product.NewService(productRepo)

	router := rest.NewRouter(cfg, &rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService),
		Product: rest.NewProductHandler(productService),

		Tokens: tokens,
		Log:    log,
	})

	srv := rest.NewServer(router, cfg.Address)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}
