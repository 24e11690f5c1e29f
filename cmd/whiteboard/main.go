package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whiteboard/internal/auth"
	"whiteboard/internal/config"
	"whiteboard/internal/db"
	httpx "whiteboard/internal/http"
	"whiteboard/internal/note"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	hash := cfg.AdminPasswordHash
	if hash == "" {
		if hash, err = auth.HashPassword(cfg.AdminPassword); err != nil {
			log.Fatal(err)
		}
	}
	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	gate := auth.NewGate(hash, jwtSvc)

	r, err := httpx.NewRouter(cfg, store, gate, jwtSvc)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}

func openStore(cfg config.Config) (note.Store, error) {
	var seed []note.Note
	if cfg.SeedNotes {
		seed = note.Seed()
	}

	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set, notes are kept in memory\n")
		return note.NewMemoryStore(seed...), nil
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		return nil, err
	}

	store := &note.GormStore{DB: gdb}
	if len(seed) > 0 {
		if err := store.SeedIfEmpty(context.Background(), seed); err != nil {
			return nil, err
		}
	}
	return store, nil
}
