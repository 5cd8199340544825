package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediconnect/config"
	"mediconnect/cron"
	"mediconnect/database"
	"mediconnect/database/seed"
	appointmentRepoPkg "mediconnect/database/repository/appointment"
	prescriptionRepoPkg "mediconnect/database/repository/prescription"
	userRepoPkg "mediconnect/database/repository/user"
	"mediconnect/handlers"
	"mediconnect/middleware"
	"mediconnect/routes"
	"mediconnect/services/assistant"
	"mediconnect/services/notification"
	"mediconnect/services/prescription"
	"mediconnect/services/scheduling"
	"mediconnect/services/tasks"
	"mediconnect/services/user"
	"mediconnect/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	// Repositories. The memory driver runs fully in-process with seeded demo
	// data; the mongo driver persists and uses Redis for sessions and auth.
	var (
		usersRepo         userRepoPkg.UserRepository
		appointmentsRepo  appointmentRepoPkg.AppointmentRepository
		prescriptionsRepo prescriptionRepoPkg.PrescriptionRepository
		sessionStore      assistant.SessionStore
	)
	switch config.AppConfig.StorageDriver {
	case "mongo":
		database.InitDB()
		utils.InitCache()
		utils.InitAuthCache()
		usersRepo = userRepoPkg.NewMongoUserRepo()
		appointmentsRepo = appointmentRepoPkg.NewMongoAppointmentRepo()
		prescriptionsRepo = prescriptionRepoPkg.NewMongoPrescriptionRepo()
		sessionStore = assistant.NewRedisSessionStore(utils.GetCacheClient())
	default:
		usersRepo = userRepoPkg.NewMemoryUserRepo()
		appointmentsRepo = appointmentRepoPkg.NewMemoryAppointmentRepo()
		prescriptionsRepo = prescriptionRepoPkg.NewMemoryPrescriptionRepo()
		sessionStore = assistant.NewMemorySessionStore()
		seed.Seed(usersRepo, appointmentsRepo, prescriptionsRepo)
	}

	// Reminder pipeline, optional.
	var reminders scheduling.ReminderScheduler
	if config.AppConfig.RemindersEnabled {
		scheduler := tasks.NewReminderScheduler()
		defer scheduler.Close()
		reminders = scheduler
	}

	// Services.
	engine := &scheduling.DefaultSchedulingEngine{
		Repo:      appointmentsRepo,
		Users:     usersRepo,
		Reminders: reminders,
	}
	userService := user.NewUserService(usersRepo)
	prescriptionService := prescription.NewPrescriptionService(prescriptionsRepo, engine)
	assistantService := assistant.NewAssistantService(sessionStore, usersRepo, engine)

	if config.AppConfig.RemindersEnabled {
		cron.InitReminderWorker(engine, notification.NewLogNotificationService())
	}

	// Router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := handlers.NewHandlerBundle(engine, userService, prescriptionService, assistantService)
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
