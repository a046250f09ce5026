package routes

import (
	"net/http"

	"turforlag/internal/config"
	"turforlag/internal/handlers"
	"turforlag/internal/middleware"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	courseHandler *handlers.CourseHandler,
	tabsHandler *handlers.TabsHandler,
	sectionHandler *handlers.SectionHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// --- Всё остальное только с токеном LMS ---
	protected := router.PathPrefix("").Subrouter()
	protected.Use(middleware.Identity(cfg.JWTSecret, cfg.SessionCookie), middleware.AdminFastLane)

	protected.HandleFunc("/courses/{id:[0-9]+}", courseHandler.View).Methods("GET")
	protected.HandleFunc("/courses/{id:[0-9]+}/tabs/top/{index:[0-9]+}", tabsHandler.ActivateTop).Methods("POST")
	protected.HandleFunc("/courses/{id:[0-9]+}/tabs/sub/{index:[0-9]+}", tabsHandler.ActivateSub).Methods("POST")

	api := protected.PathPrefix("/api").Subrouter()
	api.HandleFunc("/courses/{id:[0-9]+}/structure", courseHandler.Structure).Methods("GET")

	editing := api.PathPrefix("").Subrouter()
	editing.Use(middleware.AnyRole(middleware.EditingRoles...))
	editing.HandleFunc("/courses/{id:[0-9]+}/sections/move", sectionHandler.Move).Methods(http.MethodPost, http.MethodOptions)
}
