package setup

import (
	"monplanting/app"
	"monplanting/config"
	"monplanting/database"
	"monplanting/session"

	"go.uber.org/zap"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *zap.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", zap.String("path", dbPath))
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, cfg *config.Config, logger *zap.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	sessionStore := session.NewStore(cfg.SessionTTL)
	if err := sessionStore.StartCleanup(cfg.SessionCleanupSchedule, logger.Named("session")); err != nil {
		return nil, err
	}

	application := app.New(repo, sessionStore, logger, app.Options{
		BcryptCost:   cfg.BcryptCost,
		SecureCookie: cfg.IsProduction(),
	})
	logger.Info("application initialized")

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *zap.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.SessionStore != nil {
		application.SessionStore.StopCleanup()
		logger.Info("session cleanup stopped")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
			return
		}
		logger.Info("database closed")
	}
}
