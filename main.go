package main

import (
	"context"
	"embed"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"welltwin/adapters/memory"
	"welltwin/adapters/postgres"
	"welltwin/adapters/tabular"
	"welltwin/app"
	"welltwin/internal/config"
	"welltwin/internal/migration"
	"welltwin/ports"
	"welltwin/ui"
)

//go:embed ui/templates/** ui/static/** NOTES.md
var embeddedFiles embed.FS

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the slurry catalog before anything serves traffic
	catalog, err := tabular.LoadCatalog(appConfig.Data.SlurryFile)
	if err != nil {
		log.Fatalf("Failed to load slurry catalog: %v", err)
	}
	log.Printf("Catalog fingerprint: %s", catalog.Fingerprint().Short())

	// Job history: PostgreSQL when configured, in-memory otherwise
	jobs := setupJobRepository(appConfig)

	sims := app.NewSimulationService(catalog, jobs)
	sweeps := app.NewSweepService(sims)
	prof := app.NewProfileService(catalog)

	gin.SetMode(appConfig.Server.GinMode)
	server := ui.NewServer(embeddedFiles)
	if err := server.Initialize(catalog, sims, sweeps, prof); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("Starting WellTwin server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}

func setupJobRepository(appConfig *config.Config) ports.JobRepository {
	if !appConfig.HasDatabase() {
		log.Println("No DATABASE_URL configured, keeping job history in memory")
		return memory.NewJobRepository()
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.NewRunner().Run(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Job history persisted to PostgreSQL")
	return postgres.NewJobRepository(db)
}
