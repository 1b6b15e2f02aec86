package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/quizkit/quizkit/internal/api/http"
	"github.com/quizkit/quizkit/internal/bank"
	"github.com/quizkit/quizkit/internal/config"
	"github.com/quizkit/quizkit/internal/db"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	b, warns, err := loadBank(cfg)
	if err != nil {
		log.Fatalf("bank load failed: %v", err)
	}
	for _, w := range warns {
		log.Printf("bank warning: %s", w)
	}
	log.Printf("bank loaded: %d quizzes", b.Len())

	reg := api.NewRegistry()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/api", func(ar chi.Router) {
		api.Mount(ar, b, reg)
	})

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	log.Printf("quizd listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func loadBank(cfg config.Config) (*bank.Bank, []bank.Warning, error) {
	switch cfg.BankDriver {
	case "dir":
		return bank.LoadDir(cfg.BankPath)
	case "sqlite", "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.BankDriver), cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		defer dbh.Close()
		return bank.NewSQLStore(dbh).LoadBank(ctx)
	default:
		return bank.LoadFile(cfg.BankPath)
	}
}
