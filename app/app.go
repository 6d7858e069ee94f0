package app

import (
	"time"

	"monplanting/database"
	"monplanting/services"
	"monplanting/session"
	"monplanting/validator"

	"go.uber.org/zap"
)

// Options tune the parts of the container that differ between deployments.
type Options struct {
	BcryptCost   int
	SecureCookie bool
	Now          func() time.Time
}

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *zap.Logger
	SecureCookie bool

	AuthService      *services.AuthService
	ParcelService    *services.ParcelService
	ActivityService  *services.ActivityService
	ReminderService  *services.ReminderService
	AnalyticsService *services.AnalyticsService
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, logger *zap.Logger, opts Options) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New()

	parcels := services.NewParcelService(repo, v)
	activities := services.NewActivityService(repo, repo, v)
	reminders := services.NewReminderService(repo, repo, v)

	return &App{
		Repo:         repo,
		SessionStore: sessionStore,
		Validator:    v,
		Logger:       logger,
		SecureCookie: opts.SecureCookie,

		AuthService:      services.NewAuthService(repo, services.NewPasswordHasher(opts.BcryptCost), v),
		ParcelService:    parcels,
		ActivityService:  activities,
		ReminderService:  reminders,
		AnalyticsService: services.NewAnalyticsService(parcels, activities, reminders, opts.Now),
	}
}
