package main

import (
	"log"
	"os"

	"github.com/VictoriaKoe/NutriTrack/config"
	"github.com/VictoriaKoe/NutriTrack/routes"
	"github.com/VictoriaKoe/NutriTrack/services"
	"github.com/VictoriaKoe/NutriTrack/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	config.InitDB()

	// Seed the patient table from the HEIFA dataset before any request is
	// served. A seeded store makes this a no-op; a failed import leaves the
	// store empty and the app keeps running without seeded users.
	csvPath := os.Getenv("CSV_PATH")
	if csvPath == "" {
		csvPath = "data.csv"
	}
	if err := services.NewImportService(config.DB).SeedIfEmpty(csvPath); err != nil {
		log.Printf("CSV import failed, continuing with empty store: %v", err)
	}

	prefsPath := os.Getenv("PREFS_PATH")
	if prefsPath == "" {
		prefsPath = "nutritrack_prefs.json"
	}
	session := utils.NewSessionManager(utils.NewPrefStore(prefsPath))

	r := routes.SetupRouter(config.DB, session)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
