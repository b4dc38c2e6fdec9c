package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notify"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	logger.Setup(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg)
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// 📡 REALTIME
	// ======================================================
	hub := realtime.NewHub(slog.Default())
	var publisher realtime.Publisher = hub

	if cfg.Realtime.RedisURL != "" {
		client, err := realtime.NewRedisClient(cfg.Realtime.RedisURL)
		if err != nil {
			log.Fatalf("failed to configure redis: %v", err)
		}
		defer client.Close()

		bridge := realtime.NewRedisBridge(client, cfg.Realtime.Channel, hub, slog.Default())
		publisher = bridge

		go func() {
			if err := bridge.Run(ctx); err != nil {
				slog.Error("realtime bridge stopped", "error", err)
			}
		}()
	}

	// ======================================================
	// 🔔 NOTIFICATIONS
	// ======================================================
	writer := notify.NewWriter(infraRepo.NewNotificationGormRepository(db), publisher)
	dispatcher := notify.NewDispatcher(writer, slog.Default())

	// ======================================================
	// 🖼️ STORAGE
	// ======================================================
	var store storage.ObjectStore
	if cfg.Storage.Enabled() {
		store = storage.NewS3Store(cfg.Storage)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Hub:       hub,
		Publisher: publisher,
		Notifier:  dispatcher,
		Store:     store,
		Location:  loc,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Shutdown não espera conexões sequestradas; as WebSockets fecham pelo hub.
	srv.RegisterOnShutdown(hub.CloseAll)

	go func() {
		slog.Info("server running", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		slog.Error("notification dispatcher close failed", "error", err)
	}
}
