package main

import (
	"log"

	"github.com/jfarje/usell-backend/internal/config"
	"github.com/jfarje/usell-backend/internal/db"
	"github.com/jfarje/usell-backend/internal/model"
	"github.com/jfarje/usell-backend/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	if err := conn.AutoMigrate(
		&model.Career{},
		&model.Category{},
		&model.Student{},
		&model.Post{},
		&model.WishPost{},
		&model.Transaction{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn)
	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
