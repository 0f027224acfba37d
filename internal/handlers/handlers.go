package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"LostAndFound/internal/config"
	"LostAndFound/internal/middleware"
	"LostAndFound/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler assembles the router for all handlers.
func NewHandler(
	userService *service.UserService,
	registry *service.RegistryService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg)
	itemHandler := NewItemHandler(registry, logger, cfg)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Get("/api/user/me", userHandler.Me)

	// Item routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Create)
	r.Patch("/api/items/{id}/status", itemHandler.UpdateStatus)
	r.Delete("/api/items/{id}", itemHandler.Delete)

	// Public image URLs resolve into the blob directory
	fs := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.BlobDir)))
	r.Get("/files/*", fs.ServeHTTP)

	return &Handler{Router: r}
}
