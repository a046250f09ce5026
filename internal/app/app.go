package app

import (
	"context"

	"turforlag/internal/config"
	"turforlag/internal/db"
	"turforlag/internal/handlers"
	"turforlag/internal/logger"
	"turforlag/internal/render"
	"turforlag/internal/repository"
	"turforlag/internal/routes"
	"turforlag/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Подключение к БД LMS", zap.String("dsn", cfg.GetDSNSafe()), zap.String("prefix", cfg.DbPrefix))

	// Репозитории
	courseRepo := repository.NewCourseRepo(conn, cfg.DbPrefix)

	// Сервисы
	structureSvc := services.NewStructureService(courseRepo)
	viewSvc := services.NewViewService(courseRepo, structureSvc, cfg)
	reorderSvc := services.NewReorderService(courseRepo, cfg)

	// Хендлеры
	courseH := handlers.NewCourseHandler(structureSvc, viewSvc, render.NewHTMLRenderer(), cfg.SiteURL, cfg.TabBackground)
	tabsH := handlers.NewTabsHandler(structureSvc, cfg.SiteURL)
	sectionH := handlers.NewSectionHandler(reorderSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, courseH, tabsH, sectionH)

	return router, nil
}
