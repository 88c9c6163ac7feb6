package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-travel-identity/internal/config"
	"go-travel-identity/internal/handler"
	"go-travel-identity/internal/middleware"
	"go-travel-identity/internal/model"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", authHandler.Register)
			auth.Post("/register-admin", authHandler.RegisterAdmin)
			auth.Post("/login", authHandler.Login)
			auth.Post("/validate", authHandler.Validate)
			auth.Post("/refresh", authHandler.Refresh)
		})

		api.Route("/users", func(users chi.Router) {
			users.Use(authMiddleware.RequireAuth)

			users.With(authMiddleware.RequireRoles(model.RoleAdmin)).Post("/", userHandler.Create)
			users.Get("/{id}", userHandler.Get)
			users.Put("/{id}/preferences", userHandler.UpdatePreferences)
			users.Get("/{id}/preferences", userHandler.GetPreferences)
		})
	})

	return r
}
