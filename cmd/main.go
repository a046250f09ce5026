package main

import (
	"context"
	"net/http"

	_ "turforlag/docs"
	"turforlag/internal/app"
	"turforlag/internal/config"
	"turforlag/internal/logger"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// @title Turforlag API
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @version 1.0
// @description Формат курса с вкладками: структура курса, прогресс, вкладки и перемещение разделов.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// конфига нет, пишем в консоль
		logger.InitLogger(&config.Config{Log: "dev"})
		logger.Log.Fatal("Ошибка загрузки конфига", zap.Error(err))
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Некорректный конфиг", zap.Error(err))
	}
	for _, w := range warnings {
		logger.Log.Warn("Конфиг", zap.String("warning", w))
	}

	router, err := app.InitApp(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}

	origins := []string{"*"}
	if cfg.SiteURL != "" {
		origins = []string{cfg.SiteURL}
	}
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
	})

	logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
