package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "tasktracker/internal/adapter/db"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	httpmiddleware "tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/app/service"
	"tasktracker/internal/config"
	"tasktracker/pkg/ipwhitelist"
	"tasktracker/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageRu},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	projectRepo := dbadapter.NewProjectRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	projectService := service.NewProjectService(projectRepo, taskRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo)

	whitelist := ipwhitelist.Load(cfg.WhitelistPath)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	healthHandler := handlers.NewHealthHandler(db)
	pageHandler := handlers.NewPageHandler(taskService, projectService)
	taskHandler := handlers.NewTaskHandler(taskService, whitelist)
	httpadapter.RegisterRoutes(r, healthHandler, pageHandler, taskHandler, whitelist)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
