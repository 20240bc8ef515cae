package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelpartner/internal/catalog"
	intconfig "travelpartner/internal/config"
	router "travelpartner/internal/http"
	"travelpartner/internal/http/handlers"
	"travelpartner/internal/seatconfig"
	"travelpartner/internal/store"
	"travelpartner/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	utils.InitLogger(env.LogLevel, env.LogFormat)
	log := utils.Logger()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	storeClient := store.NewClient(env.StoreBaseURL, env.StoreTimeout)

	// Redis is optional. Without it the catalog client fetches the public
	// dataset on every request.
	var cache catalog.Cache
	if env.RedisAddr != "" {
		redisCache, err := catalog.NewRedisCache(env.RedisAddr)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, catalog caching disabled")
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}
	catalogClient := catalog.NewClient(env.CatalogBaseURL, env.StoreTimeout, cache)

	h := &handlers.Handlers{
		Env:      env,
		Store:    storeClient,
		Sessions: seatconfig.NewManager(storeClient),
		Catalog:  catalogClient,
	}

	r := router.NewRouter(h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("shutdown failed")
	}

	log.Info("server stopped")
}
