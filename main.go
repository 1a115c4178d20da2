package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"portfolio/handler"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	jwtKey := os.Getenv("JWT_SECRET")
	if jwtKey == "" {
		log.Fatal("environment variable JWT_SECRET must be set")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "portfolio.db"
	}

	// Missing rows on update/delete historically surfaced as 500s for
	// experiences and portfolios; this flag switches them to clean 404s.
	strictNotFound := os.Getenv("STRICT_NOT_FOUND") == "true"

	db, err := handler.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	listCache := handler.NewListCache()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/login", handler.Login(db, jwtKey))
	mux.HandleFunc("/api/stats", handler.Stats(db))

	// Reads stay public; mutations require a bearer token.
	mux.HandleFunc("/api/skills", handler.RequireWriteAuth(jwtKey, handler.Skills(db, listCache)))
	mux.HandleFunc("/api/skills/", handler.RequireWriteAuth(jwtKey, handler.SkillByID(db, listCache)))
	mux.HandleFunc("/api/experiences", handler.RequireWriteAuth(jwtKey, handler.Experiences(db, listCache)))
	mux.HandleFunc("/api/experiences/", handler.RequireWriteAuth(jwtKey, handler.ExperienceByID(db, listCache, strictNotFound)))
	mux.HandleFunc("/api/portofolios", handler.RequireWriteAuth(jwtKey, handler.Portfolios(db, listCache)))
	mux.HandleFunc("/api/portofolios/", handler.RequireWriteAuth(jwtKey, handler.PortfolioByID(db, listCache, strictNotFound)))

	frontendURL := os.Getenv("FRONTEND_URL")
	frontendURL2 := os.Getenv("FRONTEND_URL2")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{frontendURL, frontendURL2},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Portfolio backend running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(mux)))
}
