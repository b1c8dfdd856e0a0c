package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecosempre/ecosempre/internal/metrics"
	"github.com/ecosempre/ecosempre/internal/middleware"
)

// RouterDeps bundles everything NewRouter needs to wire the API.
type RouterDeps struct {
	// middleware dependencies
	CORSAllowedOrigin string
	Metrics           *metrics.Collector

	// /metrics scrape endpoint; left nil in tests that don't need it
	MetricsHandler http.Handler

	// liveness
	HealthChecker Pinger

	// domain services
	UserService            UserServiceInterface
	ArticleService         ArticleServiceInterface
	ContactService         ContactServiceInterface
	NewsletterService      NewsletterServiceInterface
	CollectionPointService CollectionPointServiceInterface
}

// NewRouter returns a chi.Router with the full middleware chain and every
// API endpoint mounted.
//
// Middleware execution order:
//
//	RequestID → Recovery → SecurityHeaders → CORS → Metrics → Logging
//
// RequestID runs first so the recovery and logging middleware can tag
// everything they emit, and Recovery sits above the rest so a panic in any
// later stage still produces a 500 instead of tearing down the connection.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	r.Use(middleware.NewLoggingMiddleware(slog.Default()))

	userHandler := NewUserHandler(deps.UserService)
	articleHandler := NewArticleHandler(deps.ArticleService)
	contactHandler := NewContactHandler(deps.ContactService)
	newsletterHandler := NewNewsletterHandler(deps.NewsletterService)
	pointHandler := NewCollectionPointHandler(deps.CollectionPointService)
	healthHandler := NewHealthHandler(deps.HealthChecker)

	// liveness
	r.Get("/health", healthHandler.Health)

	// Prometheus scrape endpoint
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	// auth
	r.Post("/users", userHandler.CreateUser)
	r.Post("/login", userHandler.Login)

	// blog
	r.Route("/articles", func(r chi.Router) {
		r.Get("/", articleHandler.ListArticles)
		r.Post("/", articleHandler.CreateArticle)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", articleHandler.GetArticle)
			r.Put("/", articleHandler.UpdateArticle)
			r.Delete("/", articleHandler.DeleteArticle)
		})
	})

	// contact form inbox
	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", contactHandler.CreateContact)
		r.Get("/", contactHandler.ListContacts)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", contactHandler.GetContact)
			r.Delete("/", contactHandler.DeleteContact)
		})
	})

	// mailing list
	r.Route("/newsletter", func(r chi.Router) {
		r.Post("/", newsletterHandler.Subscribe)
		r.Get("/", newsletterHandler.ListSubscribers)
		r.Delete("/{id}", newsletterHandler.Unsubscribe)
	})

	// recycling drop-off locations
	r.Route("/collection-points", func(r chi.Router) {
		r.Get("/", pointHandler.ListCollectionPoints)
		r.Post("/", pointHandler.CreateCollectionPoint)
		r.Delete("/{id}", pointHandler.DeleteCollectionPoint)
	})

	return r
}
