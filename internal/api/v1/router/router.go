package router

import (
	"net/http"

	"quizhub/docs"
	"quizhub/internal/api/v1/handler"
	"quizhub/internal/config"
	"quizhub/internal/middleware"
	"quizhub/internal/repository"
	"quizhub/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires services and handlers over store and returns the API mounted
// under /api.
func New(cfg *config.Config, store repository.Store, admin service.AdminCredentials, logger zerolog.Logger, opts ...service.CourseServiceOption) http.Handler {
	// 1. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 2. Initialize services & handlers
	courseSvc := service.NewCourseService(store.Courses(), logger, opts...)
	quizSvc := service.NewQuizService(store.Courses(), logger)
	statsSvc := service.NewStatsService(store.Courses(), store.Users(), store.Visitors(), logger)
	userSvc := service.NewUserService(store.Users(), logger)
	visitorSvc := service.NewVisitorService(store.Visitors(), logger)
	adminSvc := service.NewAdminService(admin, logger)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	quizHandler := handler.NewQuizHandler(quizSvc, logger)
	adminHandler := handler.NewAdminHandler(adminSvc, statsSvc, validate, logger)
	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	visitorHandler := handler.NewVisitorHandler(visitorSvc, statsSvc, logger)
	healthHandler := handler.NewHealthHandler(store, logger)

	// 3. Build chi router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(chimiddleware.Recoverer)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Route not found"}`))
	})

	r.Route("/api", func(api chi.Router) {
		courseHandler.RegisterRoutes(api)
		quizHandler.RegisterRoutes(api)
		adminHandler.RegisterRoutes(api)
		userHandler.RegisterRoutes(api)
		visitorHandler.RegisterRoutes(api)
		healthHandler.RegisterRoutes(api)

		// Swagger documentation
		api.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
		})
	})

	// 4. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	logger.Info().Strs("allowed_origins", cfg.AllowedOrigins).Msg("Router initialized")
	return c.Handler(r)
}
