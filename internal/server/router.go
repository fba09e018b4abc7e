// Package server assembles the HTTP routers and the shared server
// lifecycle for both services.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"jobcart/internal/auth"
	"jobcart/internal/models"
	"jobcart/internal/server/handlers"
	"jobcart/internal/server/middleware"
	"jobcart/internal/server/storage"
)

// TrackerConfig carries the dependencies of the job tracker router.
type TrackerConfig struct {
	Logger       *slog.Logger
	JWT          auth.Config
	Users        storage.UserStorage
	Applications storage.ApplicationStorage
	LoginRate    int
	LoginWindow  time.Duration
}

// NewTrackerRouter builds the job tracker HTTP handler: registration,
// login, and the owner-scoped application routes.
func NewTrackerRouter(cfg TrackerConfig) http.Handler {
	authHandler := handlers.NewAuthHandler(cfg.Logger, cfg.Users, cfg.JWT)
	appsHandler := handlers.NewApplicationsHandler(cfg.Logger, cfg.Applications, cfg.Users)
	healthHandler := handlers.NewHealthHandler(cfg.Logger, "tracker")

	authenticated := middleware.Authenticate(cfg.Logger, cfg.JWT)
	loginLimited := middleware.RateLimit(cfg.LoginRate, cfg.LoginWindow, cfg.Logger)

	mux := http.NewServeMux()
	mux.Handle("POST /register/{$}", http.HandlerFunc(authHandler.Register))
	mux.Handle("POST /login/{$}", loginLimited(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /applications/{$}", authenticated(http.HandlerFunc(appsHandler.Create)))
	mux.Handle("GET /applications/{$}", authenticated(http.HandlerFunc(appsHandler.List)))
	mux.Handle("GET /applications/stats/{$}", authenticated(http.HandlerFunc(appsHandler.Stats)))
	mux.Handle("PUT /applications/{id}", authenticated(http.HandlerFunc(appsHandler.UpdateStatus)))
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler.Health))

	return chain(mux,
		middleware.Recovery(cfg.Logger),
		middleware.LoggingWithSkip(cfg.Logger, []string{"/healthz"}),
	)
}

// ShopConfig carries the dependencies of the shop router.
type ShopConfig struct {
	Logger      *slog.Logger
	JWT         auth.Config
	Users       storage.UserStorage
	Products    storage.ProductStorage
	Carts       storage.CartStorage
	LoginRate   int
	LoginWindow time.Duration
}

// NewShopRouter builds the shop HTTP handler: login, the public catalog,
// the admin-gated product creation, and the owner-scoped cart routes.
func NewShopRouter(cfg ShopConfig) http.Handler {
	authHandler := handlers.NewAuthHandler(cfg.Logger, cfg.Users, cfg.JWT)
	productsHandler := handlers.NewProductsHandler(cfg.Logger, cfg.Products)
	cartHandler := handlers.NewCartHandler(cfg.Logger, cfg.Carts, cfg.Products)
	healthHandler := handlers.NewHealthHandler(cfg.Logger, "shop")

	authenticated := middleware.Authenticate(cfg.Logger, cfg.JWT)
	adminOnly := middleware.RequireRole(cfg.Logger, models.RoleAdmin)
	loginLimited := middleware.RateLimit(cfg.LoginRate, cfg.LoginWindow, cfg.Logger)

	mux := http.NewServeMux()
	mux.Handle("POST /login/{$}", loginLimited(http.HandlerFunc(authHandler.Login)))
	mux.Handle("GET /products/{$}", http.HandlerFunc(productsHandler.List))
	mux.Handle("POST /admin/add_product/{$}", authenticated(adminOnly(http.HandlerFunc(productsHandler.Create))))
	mux.Handle("POST /cart/add/{$}", authenticated(http.HandlerFunc(cartHandler.Add)))
	mux.Handle("GET /cart/{$}", authenticated(http.HandlerFunc(cartHandler.List)))
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler.Health))

	return chain(mux,
		middleware.Recovery(cfg.Logger),
		middleware.LoggingWithSkip(cfg.Logger, []string{"/healthz"}),
	)
}

// chain wraps h with the middlewares so the first listed runs outermost.
func chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
