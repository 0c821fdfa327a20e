package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/config"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/transport/dataloader"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/transport/middleware"
)

// Handlers groups the resource handlers mounted under /api/v1.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Me        *MeHandler
	Companies *CompanyHandler
	Customers *CustomerHandler
	Prospects *ProspectHandler
	Deals     *DealHandler
	Todos     *TodoHandler
	Insights  *InsightsHandler
}

// RouterDeps holds everything NewRouter needs.
type RouterDeps struct {
	Logger         *slog.Logger
	Handlers       Handlers
	TokenValidator middleware.TokenValidator
	Loaders        *dataloader.Repos
	CORS           config.CORSConfig
	// TrustedProxies may report the client address via forwarding headers.
	TrustedProxies middleware.TrustedProxies
	RateLimit      config.RateLimitConfig
	// RateLimiter may be nil, which disables rate limiting.
	RateLimiter    *middleware.RateLimiter
	RequestTimeout time.Duration
	// Metrics is served at /metrics when set.
	Metrics http.Handler
}

// NewRouter builds the HTTP handler tree.
//
// Middleware order: request ID and client IP, access log, panic recovery,
// CORS, then optional authentication. CRM routes additionally require a
// user and get per-request loaders.
func NewRouter(d RouterDeps) http.Handler {
	h := d.Handlers
	r := chi.NewRouter()

	r.Use(middleware.RequestID(d.TrustedProxies))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.CORS(d.CORS))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	limit := func(perMinute int) middleware.Middleware {
		if d.RateLimiter == nil || !d.RateLimit.Enabled || perMinute <= 0 {
			return passthrough
		}
		return d.RateLimiter.Limit(perMinute)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if d.RequestTimeout > 0 {
			r.Use(chimiddleware.Timeout(d.RequestTimeout))
		}
		r.Use(middleware.Auth(d.TokenValidator))

		r.Group(func(r chi.Router) {
			r.Use(limit(d.RateLimit.AuthPerMinute))
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Use(limit(d.RateLimit.PerMinute))
			r.Use(dataloader.Middleware(d.Loaders))

			r.Get("/me", h.Me.Get)
			r.Patch("/me", h.Me.Update)
			r.Get("/me/notifications", h.Me.GetNotifications)
			r.Patch("/me/notifications", h.Me.UpdateNotifications)

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.Companies.List)
				r.Post("/", h.Companies.Create)
				r.Get("/{id}", h.Companies.Get)
				r.Patch("/{id}", h.Companies.Update)
				r.Delete("/{id}", h.Companies.Delete)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.Customers.List)
				r.Post("/", h.Customers.Create)
				r.Get("/{id}", h.Customers.Get)
				r.Patch("/{id}", h.Customers.Update)
				r.Delete("/{id}", h.Customers.Delete)
			})

			r.Route("/prospects", func(r chi.Router) {
				r.Get("/", h.Prospects.List)
				r.Post("/", h.Prospects.Create)
				r.Get("/{id}", h.Prospects.Get)
				r.Patch("/{id}", h.Prospects.Update)
				r.Delete("/{id}", h.Prospects.Delete)
				r.Post("/{id}/convert", h.Prospects.Convert)
			})

			r.Route("/deals", func(r chi.Router) {
				r.Get("/", h.Deals.List)
				r.Post("/", h.Deals.Create)
				r.Get("/{id}", h.Deals.Get)
				r.Patch("/{id}", h.Deals.Update)
				r.Patch("/{id}/stage", h.Deals.MoveStage)
				r.Delete("/{id}", h.Deals.Delete)
			})

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", h.Todos.List)
				r.Post("/", h.Todos.Create)
				r.Post("/bulk-status", h.Todos.BulkStatus)
				r.Get("/{id}", h.Todos.Get)
				r.Patch("/{id}", h.Todos.Update)
				r.Delete("/{id}", h.Todos.Delete)
			})

			r.Get("/dashboard/stats", h.Insights.Dashboard)
			r.Get("/activity", h.Insights.EntityActivity)
			r.Get("/activity/me", h.Insights.MyActivity)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func passthrough(next http.Handler) http.Handler { return next }
