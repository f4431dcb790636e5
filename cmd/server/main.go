package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"qsplan-backend/internal/auth"
	"qsplan-backend/internal/cache"
	"qsplan-backend/internal/config"
	"qsplan-backend/internal/database"
	"qsplan-backend/internal/db"
	"qsplan-backend/internal/handlers"
	"qsplan-backend/internal/health"
	qshttp "qsplan-backend/internal/http"
	"qsplan-backend/internal/middleware"
	"qsplan-backend/internal/repositories"
	"qsplan-backend/internal/services"
	"qsplan-backend/internal/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(ctx); err != nil {
		logrus.WithError(err).Fatal("migrations failed")
	}

	// Cache is best effort, the app runs fine without Redis
	if err := cache.Init(); err != nil {
		logrus.WithError(err).Warn("redis unavailable, caching disabled")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	resetRepo := repositories.NewPasswordResetRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	templateRepo := repositories.NewTemplateRepository(pool)
	kbRepo := repositories.NewKnowledgeBaseRepository(pool)
	historyRepo := repositories.NewHistoryRepository(pool)

	if cfg.SeedDemo {
		if err := database.SeedDemo(ctx, projectRepo, itemRepo); err != nil {
			logrus.WithError(err).Fatal("demo seed failed")
		}
	}

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	historyService := services.NewHistoryService(historyRepo)
	userService := services.NewUserService(userRepo, resetRepo, projectRepo, jwtManager)
	projectService := services.NewProjectService(projectRepo, templateRepo, itemRepo)
	itemService := services.NewItemService(itemRepo, projectRepo, historyService)
	templateService := services.NewTemplateService(templateRepo)
	kbService := services.NewKnowledgeBaseService(kbRepo)
	dashboardService := services.NewDashboardService(itemRepo, projectRepo)
	exportService := services.NewExportService()

	var objectStore storage.ObjectStore
	if cfg.Storage.Enabled {
		store, err := storage.NewS3Store(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Fatal("object storage init failed")
		}
		objectStore = store
		logrus.WithField("bucket", cfg.Storage.Bucket).Info("object storage connected")
	} else {
		logrus.Info("object storage disabled, document uploads unavailable")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	itemHandler := handlers.NewItemHandler(itemService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	kbHandler := handlers.NewKnowledgeBaseHandler(kbService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, historyService)
	exportHandler := handlers.NewExportHandler(exportService, projectService, itemService)
	fileHandler := handlers.NewFileHandler(objectStore)
	activityHandler := handlers.NewActivityHandler(historyService, jwtManager)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := qshttp.NewRouter(
		authHandler,
		userHandler,
		projectHandler,
		itemHandler,
		templateHandler,
		kbHandler,
		dashboardHandler,
		exportHandler,
		fileHandler,
		activityHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				middleware.NewCORS(cfg)(router),
			),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logrus.WithField("addr", addr).Info("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("server failed")
	}
}
