package main

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitty-registry/internal/adapters/auth/jwtauth"
	"kitty-registry/internal/adapters/auth/remote"
	"kitty-registry/internal/adapters/random/blakedna"
	"kitty-registry/internal/adapters/storage/bolt"
	pg "kitty-registry/internal/adapters/storage/postgres"
	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/platform/config"
	"kitty-registry/internal/platform/logger"
	"kitty-registry/internal/ports/auth"
	"kitty-registry/internal/router"
)

// @title Kitty Registry API
// @version 1.0
// @description Registro de propiedad de kitties: creación con genética pseudo-aleatoria y cría (breed) por crossover bit a bit.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	verifier := buildVerifier(cfg)
	dnaSource := buildDNASource(cfg)

	// Storage: Postgres si hay DSN, BoltDB si hay path, in-memory si no.
	var (
		db        *sql.DB
		boltStore *bolt.Store
		backend   = "memory"
	)
	switch {
	case cfg.DBDSN != "":
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		defer func() { _ = db.Close() }()

		if err := pg.Migrate(context.Background(), db); err != nil {
			log.Fatalf("migrate postgres: %v", err)
		}
		backend = "postgres"
	case cfg.KittyDBPath != "":
		boltStore, err = bolt.Open(cfg.KittyDBPath)
		if err != nil {
			log.Fatalf("open bolt db: %v", err)
		}
		defer func() { _ = boltStore.Close() }()
		backend = "bolt"
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Bolt:         boltStore,
		DNA:          dnaSource,
		Logger:       appLog,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": backend,
			"auth":    authMode(cfg),
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	case <-ctx.Done():
		appLog.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLog.Error("shutdown error", map[string]any{"error": err.Error()})
		}
	}
}

// buildVerifier arma el verifier según config: JWT local con secret
// compartido, verificación remota delegada, o nil (modo dev con
// X-Debug-User-ID).
func buildVerifier(cfg config.Config) auth.AuthVerifier {
	if cfg.AuthJWTSecret != "" {
		return jwtauth.NewVerifier([]byte(cfg.AuthJWTSecret))
	}

	if cfg.AuthVerifyURL != "" {
		v, err := remote.NewVerifier(remote.Config{
			BaseURL: cfg.AuthVerifyURL,
			APIKey:  cfg.AuthVerifyAPIKey,
		})
		if err != nil {
			log.Fatalf("build remote verifier: %v", err)
		}
		return v
	}

	return nil
}

// buildDNASource arma la fuente de DNA: con RANDOM_SEED (hex) el oráculo
// devuelve siempre ese seed y la corrida es reproducible; sin seed, cada
// draw usa crypto/rand.
func buildDNASource(cfg config.Config) kitties.DNASource {
	if cfg.RandomSeed == "" {
		return blakedna.NewSource(blakedna.CryptoOracle{})
	}

	seed, err := hex.DecodeString(cfg.RandomSeed)
	if err != nil {
		log.Fatalf("RANDOM_SEED must be hex: %v", err)
	}
	return blakedna.NewSource(blakedna.NewFixedOracle(seed))
}

func authMode(cfg config.Config) string {
	switch {
	case cfg.AuthJWTSecret != "":
		return "jwt"
	case cfg.AuthVerifyURL != "":
		return "remote"
	default:
		return "dev"
	}
}
