package main

import (
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/repository/mongo"
	"alcyxob/workout-tracker/internal/service"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"
)

// Seeds the exercise catalog from a JSON file. Entries already present
// (matched by name) are skipped, so the command is safe to re-run.
func main() {
	seedFile := flag.String("file", "exercises.json", "path to the exercise seed file")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	data, err := os.ReadFile(*seedFile)
	if err != nil {
		log.Fatalf("FATAL: Could not read seed file %s: %v", *seedFile, err)
	}

	var entries []service.SeedExercise
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("FATAL: Could not parse seed file: %v", err)
	}
	log.Printf("Loaded %d exercises from %s", len(entries), *seedFile)

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// The unique name index backstops concurrent seed runs.
	mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))

	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	// Media stays as raw object keys here; presigning is a read concern.
	exerciseService := service.NewExerciseService(exerciseRepo, nil)

	inserted, err := exerciseService.Seed(ctx, entries)
	if err != nil {
		log.Fatalf("FATAL: Seeding failed after %d inserts: %v", inserted, err)
	}
	log.Printf("Seeding complete: %d inserted, %d already present.", inserted, len(entries)-inserted)
}
