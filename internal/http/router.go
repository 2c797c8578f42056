package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"chunkwise/internal/deploy"
	"chunkwise/internal/handlers"
	"chunkwise/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	VisualizationService service.VisualizationService
	WorkflowService      service.WorkflowService
	// Deployer is nil when no vector store is configured.
	Deployer     deploy.Deployer
	HealthChecks map[string]handlers.HealthCheck

	DefaultTheme       string
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	MaxBodyBytes       int64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         3600,
	}))
	if deps.RequestTimeout > 0 {
		r.Use(middleware.Timeout(deps.RequestTimeout))
	}
	if deps.MaxBodyBytes > 0 {
		r.Use(MaxBodyBytes(deps.MaxBodyBytes))
	}

	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)
	catalogHandler := handlers.NewCatalogHandler(deps.DefaultTheme)
	visualizeHandler := handlers.NewVisualizeHandler(deps.VisualizationService)
	workflowHandler := handlers.NewWorkflowHandler(deps.WorkflowService, deps.Deployer)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Get("/themes", catalogHandler.Themes)
		r.Get("/configs", catalogHandler.Configs)

		r.Post("/visualize", visualizeHandler.Visualize)
		r.Post("/chunks", visualizeHandler.Chunks)
		r.Post("/visualization", visualizeHandler.Visualization)
		r.Post("/stats", visualizeHandler.Stats)
		r.Post("/compare", visualizeHandler.Compare)

		r.Route("/workflows", func(r chi.Router) {
			r.Get("/", workflowHandler.List)
			r.Post("/", workflowHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", workflowHandler.Get)
				r.Patch("/", workflowHandler.Update)
				r.Delete("/", workflowHandler.Delete)
				r.Post("/visualize", workflowHandler.Visualize)
				r.Post("/deploy", workflowHandler.Deploy)
			})
		})
	})

	return r
}
