package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hubzz-economy/internal/config"
	"github.com/iliyamo/hubzz-economy/internal/handler"
	"github.com/iliyamo/hubzz-economy/internal/middleware"
	"github.com/iliyamo/hubzz-economy/internal/queue"
	"github.com/iliyamo/hubzz-economy/internal/repository"
	"github.com/iliyamo/hubzz-economy/internal/router"
	"github.com/iliyamo/hubzz-economy/internal/service"
)

func main() {
	cfg := config.Load()

	catalog, err := config.LoadCatalog(cfg.RulesPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []service.Option
	if cfg.PublishEvents {
		pub := service.NewAMQPPublisher(cfg.AMQPURL, queue.EconomyQueueName)
		defer pub.Close()
		opts = append(opts, service.WithNotifier(pub))

		go func() {
			if err := queue.StartLedgerConsumer(ctx, cfg.AMQPURL, cfg.LedgerLogDir); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("ledger consumer stopped: %v", err)
			}
		}()
	}

	eng := service.NewEngine(repository.NewStore(), service.RulesFromCatalog(catalog), opts...)

	admin, err := eng.Bootstrap(ctx, service.SeedFromCatalog(catalog))
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	log.Printf("bootstrap: admin %q is player %d", admin.Username, admin.ID)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and catalog cache disabled")
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	economy := handler.NewEconomyHandler(eng)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, eng), cfg.JWTSecret, limit)
	router.RegisterEconomy(e, economy, cfg.JWTSecret, limit)
	router.RegisterPublic(e, economy, cache)

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
