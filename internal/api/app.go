// Package api exposes the simulation engine as a JSON HTTP API.
package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"welltwin/app"
	"welltwin/ports"
)

// App represents the JSON API application
type App struct {
	router  *chi.Mux
	catalog ports.SlurryCatalog
	sims    *app.SimulationService
	sweeps  *app.SweepService
	prof    *app.ProfileService
}

// Config holds API application configuration
type Config struct {
	Port string
}

// NewApp creates a new API application
func NewApp(catalog ports.SlurryCatalog, sims *app.SimulationService, sweeps *app.SweepService, prof *app.ProfileService) *App {
	a := &App{
		router:  chi.NewRouter(),
		catalog: catalog,
		sims:    sims,
		sweeps:  sweeps,
		prof:    prof,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/slurries", a.handleListSlurries)
		r.Get("/slurries/{name}", a.handleGetSlurry)
		r.Post("/simulate", a.handleSimulate)
		r.Post("/sweep", a.handleSweep)
		r.Get("/profile", a.handleProfile)
		r.Get("/jobs", a.handleRecentJobs)
	})
}

// Router returns the HTTP handler for testing and mounting
func (a *App) Router() http.Handler {
	return a.router
}

// Start begins serving on the given port, blocking until the server stops
func (a *App) Start(config Config) error {
	log.Printf("[API] Listening on :%s", config.Port)
	return http.ListenAndServe(":"+config.Port, a.router)
}
