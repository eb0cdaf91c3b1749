package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config reúne la configuración del servicio, leída de variables de entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Storage: DB_DSN (Postgres) tiene prioridad; si no hay, KITTY_DB_PATH
	// (BoltDB); sin ninguno de los dos, repos in-memory.
	DBDSN       string `env:"DB_DSN"`
	KittyDBPath string `env:"KITTY_DB_PATH"`

	// Auth: con secret se verifica JWT HS256 local; con URL se delega a un
	// servicio de identidad remoto; sin ninguno, modo dev (X-Debug-User-ID).
	AuthJWTSecret    string `env:"AUTH_JWT_SECRET"`
	AuthVerifyURL    string `env:"AUTH_VERIFY_URL"`
	AuthVerifyAPIKey string `env:"AUTH_VERIFY_API_KEY"`

	// Seed fijo del oráculo de aleatoriedad (hex). Vacío = seed de
	// crypto/rand en cada draw.
	RandomSeed string `env:"RANDOM_SEED"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"kitty-registry"`
}

// Load parsea la configuración desde el entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
