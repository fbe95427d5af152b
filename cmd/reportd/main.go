package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

// reportd is a development backend for the chat frontends. It serves
// the action card endpoints with deterministic sample payloads so the
// UIs can be exercised without the production reporting service.

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	addr := getEnvDefault("REPORTD_ADDR", ":8000")

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/v1/action_cards/vision_comercial", handleVisionComercial)
	r.Get("/v1/action_cards/{card}", handleActionCard)
	r.Post("/v1/automations/run", handleAutomationRun)
	r.Post("/v1/automations/contratos_sla", handleContratosSLA)
	r.Post("/v1/automations/upload", handleUpload)

	fmt.Printf("reportd listening on %s\n", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
