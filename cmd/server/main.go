package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"cognia/adapters/postgres"
	"cognia/adapters/render"
	"cognia/ports"
	"cognia/ui"
)

func main() {
	// Optional .env for local runs; missing file is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var repository ports.ProfileRepository
	if url := os.Getenv("DATABASE_URL"); url != "" {
		db, err := postgres.Connect(context.Background(), url)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		repository = postgres.NewProfileRepository(db)
		log.Println("report persistence enabled")
	} else {
		log.Println("DATABASE_URL not set, reports are not persisted")
	}

	app := ui.NewApp(ui.Config{Port: port}, render.NewInlineDataRenderer(), repository)
	log.Printf("starting cognia server on http://localhost:%s", port)
	log.Fatal(app.Start())
}
