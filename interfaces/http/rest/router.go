package rest

import (
	"net/http"

	"insights-backend/interfaces/http/rest/handlers"
	"insights-backend/interfaces/http/rest/middleware"
	"insights-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Handlers bundles the per-entity handlers the router mounts
type Handlers struct {
	Content      *handlers.ContentHandler
	URLMappings  *handlers.URLMappingHandler
	Insights     *handlers.InsightHandler
	Implications *handlers.ImplicationHandler
	Summaries    *handlers.SummaryHandler
	Metadata     *handlers.MetadataHandler
	Admin        *handlers.AdminHandler
}

// Router creates and configures the HTTP router
type Router struct {
	handlers   Handlers
	validator  *auth.JWTValidator
	logger     *zap.Logger
	enableCORS bool
}

// NewRouter creates a new router instance
func NewRouter(h Handlers, validator *auth.JWTValidator, logger *zap.Logger, enableCORS bool) *Router {
	return &Router{
		handlers:   h,
		validator:  validator,
		logger:     logger,
		enableCORS: enableCORS,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		r.Route("/contents", func(r chi.Router) {
			r.Post("/", rt.handlers.Content.Create)
			r.Get("/", rt.handlers.Content.List)
			r.Get("/{contentID}", rt.handlers.Content.Get)
			r.Patch("/{contentID}", rt.handlers.Content.Update)
		})

		r.Route("/url-mappings", func(r chi.Router) {
			r.Post("/", rt.handlers.URLMappings.Create)
			r.Get("/", rt.handlers.URLMappings.Lookup)
			r.Get("/{urlID}", rt.handlers.URLMappings.Get)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Post("/", rt.handlers.Insights.Create)
			r.Get("/", rt.handlers.Insights.List)
			r.Post("/regenerate", rt.handlers.Insights.Regenerate)
			r.Get("/{insightID}", rt.handlers.Insights.Get)
			r.Patch("/{insightID}", rt.handlers.Insights.Update)
			r.Post("/{insightID}/preferred", rt.handlers.Insights.SetPreferred)
			r.Get("/{insightID}/qa", rt.handlers.Insights.ListQA)
		})

		r.Route("/implications", func(r chi.Router) {
			r.Post("/", rt.handlers.Implications.Create)
			r.Get("/", rt.handlers.Implications.List)
			r.Post("/regenerate", rt.handlers.Implications.Regenerate)
			r.Get("/{implicationID}", rt.handlers.Implications.Get)
			r.Patch("/{implicationID}", rt.handlers.Implications.Update)
			r.Post("/{implicationID}/preferred", rt.handlers.Implications.SetPreferred)
			r.Get("/{implicationID}/qa", rt.handlers.Implications.ListQA)
		})

		r.Route("/summaries", func(r chi.Router) {
			r.Post("/", rt.handlers.Summaries.Create)
			r.Get("/", rt.handlers.Summaries.List)
			r.Get("/{summaryID}", rt.handlers.Summaries.Get)
			r.Patch("/{summaryID}", rt.handlers.Summaries.Update)
		})

		r.Route("/metadata", func(r chi.Router) {
			r.Post("/", rt.handlers.Metadata.Create)
			r.Get("/", rt.handlers.Metadata.Lookup)
			r.Get("/{metadataID}", rt.handlers.Metadata.Get)
			r.Patch("/{metadataID}", rt.handlers.Metadata.Update)
		})

		r.Post("/admin/seed", rt.handlers.Admin.Seed)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
