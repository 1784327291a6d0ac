package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-car-care/internal/app"
	"github.com/KasumiMercury/primind-car-care/internal/config"
	"github.com/KasumiMercury/primind-car-care/internal/infra/handler"
	"github.com/KasumiMercury/primind-car-care/internal/infra/push"
	"github.com/KasumiMercury/primind-car-care/internal/infra/repository"
	"github.com/KasumiMercury/primind-car-care/internal/observability"
	"github.com/KasumiMercury/primind-car-care/internal/observability/logging"
	"github.com/KasumiMercury/primind-car-care/internal/observability/middleware"
	"github.com/KasumiMercury/primind-car-care/internal/scheduler"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const shutdownTimeout = 30 * time.Second

type routes interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	ctx := context.Background()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to flush telemetry", "error", err)
		}
	}()

	db, err := initDatabase(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	if err := repository.AutoMigrate(ctx, db); err != nil {
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create event publisher", "error", err)
		return 1
	}
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	sender, err := initPushSender(ctx, cfg.Push)
	if err != nil {
		slog.Error("failed to create push sender", "error", err)
		return 1
	}

	calendar := app.NewCalendar(cfg.Calendar.Location)

	carRepo := repository.NewCarRepository(db)
	recordRepo := repository.NewMaintenanceRecordRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	locationRepo := repository.NewServiceLocationRepository(db)

	notificationUseCase := app.NewNotificationUseCase(reminderRepo, publisher, sender, calendar)

	router := setupRouter(obs,
		handler.NewCarHandler(app.NewCarUseCase(carRepo)),
		handler.NewMaintenanceHandler(app.NewMaintenanceUseCase(recordRepo, carRepo)),
		handler.NewReminderHandler(app.NewReminderUseCase(reminderRepo, carRepo, calendar)),
		handler.NewNotificationHandler(notificationUseCase),
		handler.NewDashboardHandler(app.NewDashboardUseCase(carRepo, recordRepo, calendar)),
		handler.NewLocationHandler(app.NewLocationUseCase(locationRepo)),
	)

	var dispatcher *scheduler.Scheduler
	if cfg.Dispatch.Enabled {
		dispatcher, err = scheduler.New(notificationUseCase, scheduler.Config{
			Schedule:   cfg.Dispatch.Schedule,
			Location:   cfg.Calendar.Location,
			RunTimeout: cfg.Dispatch.RunTimeout,
		}, scheduler.WithMetrics(obs.DispatchMetrics))
		if err != nil {
			slog.Error("failed to create scheduler", "error", err)
			return 1
		}

		if err := dispatcher.Start(); err != nil {
			slog.Error("failed to start scheduler", "error", err)
			return 1
		}
	} else {
		slog.Warn("DISPATCH_ENABLED is false, due notifications will not be sent")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address(), "version", Version)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if dispatcher != nil {
			if err := dispatcher.Stop(shutdownCtx); err != nil {
				slog.Warn("scheduler did not stop cleanly", "error", err)
			}
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			return 1
		}

		slog.Info("server exited properly")

		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}

		slog.Error("server exited with error", "error", err)

		return 1
	}
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(cfg.Database.SlowQueryThreshold, logging.ParseLevel(cfg.Log.Level)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

// initPushSender returns a nil Sender when FCM is not configured; reminders
// are then only published as events.
func initPushSender(ctx context.Context, cfg config.PushConfig) (push.Sender, error) {
	if !cfg.Enabled() {
		slog.Warn("FIREBASE_CREDENTIALS_PATH not set, push delivery disabled")
		return nil, nil
	}

	sender, err := push.NewFCMSender(ctx, push.FCMSenderConfig{
		CredentialsPath: cfg.FirebaseCredentialsPath,
		ProjectID:       cfg.FirebaseProjectID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("FCM push sender initialized")

	return sender, nil
}

func setupRouter(obs *observability.Resources, handlers ...routes) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		middleware.PanicRecoveryGin(),
		middleware.Gin(middleware.GinConfig{
			SkipPaths:      []string{"/ping"},
			ModuleResolver: middleware.ModuleFromPath,
			TracerName:     "github.com/KasumiMercury/primind-car-care",
			HTTPMetrics:    obs.HTTPMetrics,
		}),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1", handler.RequireUser())
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	return router
}
