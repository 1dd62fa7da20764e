package api

import (
	"net/http"
	"time"

	"request_desk/internal/api/handler"
	"request_desk/internal/api/middleware"
	"request_desk/internal/app/service"
	"request_desk/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
)

func NewRouter(
	logger *zap.Logger,
	authService *service.AuthService,
	requestService *service.RequestService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token when present, puts claims in context. Requests
	// without a token pass through; authorization happens in the admin group.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Request Handling API is running!"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterRoutes(r)

	// User-facing request routes (public, matching the legacy surface)
	requestHandler := handler.NewRequestHandler(requestService)
	requestHandler.RegisterRoutes(r)

	// Admin routes
	adminHandler := handler.NewAdminHandler(requestService, logger)
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.Authenticator(authService))
		admin.Use(middleware.AdminOnly)
		adminHandler.RegisterRoutes(admin)
	})

	return r
}
