package router

import (
	"airbnc/config"
	"airbnc/internal/handlers/booking"
	"airbnc/internal/handlers/property"
	"airbnc/internal/handlers/review"
	"airbnc/internal/handlers/user"
	"airbnc/transport/http/middleware"
	"airbnc/transport/http/response"
	"net/http"
	"time"

	_ "airbnc/docs" //nolint:revive

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Property property.Handler
	Review   review.Handler
	Booking  booking.Handler
	User     user.Handler
}

type Router struct {
	Config         *config.Config
	Middleware     middleware.AppMiddleware
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the middleware stack and every API route on router.
// health answers GET /api/healthz.
func (r *Router) SetupRoutes(router chi.Router, health http.HandlerFunc) {
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.RequestID)
	router.Use(r.Middleware.Logger)
	router.Use(r.Middleware.Tracing)

	if corsCfg := r.Config.App.CORS; corsCfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithPathNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMethodNotAllowed(w)
	})

	if !r.Config.IsProduction() {
		router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/healthz", health)

		routerGroup.Group(func(api chi.Router) {
			api.Use(r.Middleware.RateLimit())
			api.Use(chiMiddleware.Timeout(requestTimeout))

			r.DomainHandlers.Property.Router(api)
			r.DomainHandlers.Review.Router(api)
			r.DomainHandlers.Booking.Router(api)
			r.DomainHandlers.User.Router(api)
		})
	})
}

const requestTimeout = 30 * time.Second

func New(cfg *config.Config, mw middleware.AppMiddleware, domainHandlers DomainHandlers) Router {
	return Router{
		Config:         cfg,
		Middleware:     mw,
		DomainHandlers: domainHandlers,
	}
}
