// welltwin-api serves the JSON API without the dashboard UI.
package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"welltwin/adapters/memory"
	"welltwin/adapters/postgres"
	"welltwin/adapters/tabular"
	"welltwin/app"
	"welltwin/internal/api"
	"welltwin/internal/config"
	"welltwin/internal/migration"
	"welltwin/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	catalog, err := tabular.LoadCatalog(appConfig.Data.SlurryFile)
	if err != nil {
		log.Fatalf("Failed to load slurry catalog: %v", err)
	}

	var jobs ports.JobRepository = memory.NewJobRepository()
	if appConfig.HasDatabase() {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := migration.NewRunner().Run(context.Background(), db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		jobs = postgres.NewJobRepository(db)
	}

	sims := app.NewSimulationService(catalog, jobs)
	server := api.NewApp(catalog, sims, app.NewSweepService(sims), app.NewProfileService(catalog))

	log.Fatal(server.Start(api.Config{Port: appConfig.Server.Port}))
}
