// Package ui serves the cementing dashboard.
package ui

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"welltwin/app"
	"welltwin/ports"
)

// How often the usage cache behind the history panel refreshes.
const usageRefreshInterval = 5 * time.Minute

// Server represents the dashboard web server
type Server struct {
	router        *gin.Engine
	templates     *template.Template
	embeddedFiles embed.FS

	catalog ports.SlurryCatalog
	sims    *app.SimulationService
	sweeps  *app.SweepService
	prof    *app.ProfileService

	// Slurry usage caching for the history panel
	usageCache  map[string]int
	usageMutex  sync.RWMutex
	usageLoaded bool
}

// NewServer creates a new dashboard server
func NewServer(embeddedFiles embed.FS) *Server {
	return &Server{
		router:        gin.Default(),
		embeddedFiles: embeddedFiles,
		usageCache:    make(map[string]int),
	}
}

// Initialize sets up the server with dependencies
func (s *Server) Initialize(catalog ports.SlurryCatalog, sims *app.SimulationService, sweeps *app.SweepService, prof *app.ProfileService) error {
	s.catalog = catalog
	s.sims = sims
	s.sweeps = sweeps
	s.prof = prof

	funcMap := template.FuncMap{
		"mul": func(a, b float64) float64 { return a * b },
		"div": func(a, b float64) float64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
		"add":   func(a, b int) int { return a + b },
		"upper": strings.ToUpper,
		"json": func(v interface{}) string {
			b, err := json.Marshal(v)
			if err != nil {
				return "{}"
			}
			return string(b)
		},
		"ppg":   func(v float64) string { return fmt.Sprintf("%.2f ppg", v) },
		"ft":    func(v float64) string { return fmt.Sprintf("%.0f ft", v) },
		"bbl":   func(v float64) string { return fmt.Sprintf("%.1f bbl", v) },
		"min":   func(v float64) string { return fmt.Sprintf("%.1f min", v) },
	}

	templatesFS, err := fs.Sub(s.embeddedFiles, "ui/templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	s.templates, err = template.New("").Funcs(funcMap).ParseFS(templatesFS, "*.html", "fragments/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.startUsageLoader()

	return nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(s.embeddedFiles, "ui/static")
	if err != nil {
		log.Printf("[Static] Error creating static filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/simulate", s.handleSimulate)
	s.router.POST("/sweep", s.handleSweep)
	s.router.GET("/history", s.handleHistory)
	s.router.GET("/profile", s.handleCatalogProfile)
	s.router.GET("/notes", s.handleNotes)
	s.router.GET("/healthz", s.handleHealth)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting WellTwin dashboard on http://%s", addr)
	return s.router.Run(addr)
}

// Template helpers
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// loadUsage refreshes the per-slurry run counts behind the history panel
func (s *Server) loadUsage(ctx context.Context) error {
	loadStart := time.Now()

	counts, err := s.sims.UsageBySlurry(ctx)
	if err != nil {
		return err
	}

	s.usageMutex.Lock()
	s.usageCache = counts
	s.usageLoaded = true
	s.usageMutex.Unlock()

	log.Printf("[UsageLoader] Usage counts refreshed in %.2fms (%d slurries)",
		float64(time.Since(loadStart).Nanoseconds())/1e6, len(counts))
	return nil
}

func (s *Server) startUsageLoader() {
	go func() {
		ctx := context.Background()
		if err := s.loadUsage(ctx); err != nil {
			log.Printf("[UsageLoader] Error loading usage counts: %v", err)
		}
		for {
			time.Sleep(usageRefreshInterval)
			if err := s.loadUsage(ctx); err != nil {
				log.Printf("[UsageLoader] Error loading usage counts: %v", err)
			}
		}
	}()
}

func (s *Server) usageSnapshot() (map[string]int, bool) {
	s.usageMutex.RLock()
	defer s.usageMutex.RUnlock()

	snapshot := make(map[string]int, len(s.usageCache))
	for k, v := range s.usageCache {
		snapshot[k] = v
	}
	return snapshot, s.usageLoaded
}
