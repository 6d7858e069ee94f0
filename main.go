package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monplanting/config"
	"monplanting/config/setup"
	"monplanting/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.Must(logger.New(cfg.Env, cfg.LogLevel))
	defer log.Sync()

	db, err := setup.InitDatabase(cfg.DBPath, log)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	application, err := setup.InitApp(db, cfg, log)
	if err != nil {
		db.Close()
		log.Fatal("failed to initialize application", zap.Error(err))
	}

	app := setup.NewFiberApp(cfg.IsProduction(), log)
	setup.ApplyMiddleware(app, cfg.CORSOrigins, logger.Named(log, "http"))
	setup.RegisterRoutes(app, application)

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	setup.Shutdown(application, db, log)
	log.Info("server stopped")
}
