package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// StoreKind selecciona el adapter de storage.
type StoreKind string

const (
	StoreMemory   StoreKind = "memory"
	StorePostgres StoreKind = "postgres"
	StoreMongo    StoreKind = "mongo"
)

// Config se carga desde env. Los defaults sirven para dev (in-memory).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Store          StoreKind     `env:"STORE" envDefault:"memory"`
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	PostgresDSN    string        `env:"DB_DSN"`
	DatabaseName   string        `env:"DB_NAME" envDefault:"aac"`
	CollectionName string        `env:"COLLECTION_NAME" envDefault:"outcomes"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"3s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"animal-shelter-dashboard"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxSessions int           `env:"MAX_SESSIONS" envDefault:"1000"`
}

// Load parsea el entorno y valida.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Validate()
}

// LoadFrom es Load con un entorno explícito (tests).
func LoadFrom(environ map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("config: DB_DSN required for STORE=%s", c.Store)
		}
	case StoreMongo:
		if strings.TrimSpace(c.MongoURI) == "" {
			return fmt.Errorf("config: MONGO_URI required for STORE=%s", c.Store)
		}
	default:
		return fmt.Errorf("config: unknown STORE %q", c.Store)
	}

	if c.SessionTTL <= 0 || c.MaxSessions <= 0 {
		return fmt.Errorf("config: SESSION_TTL and MAX_SESSIONS must be positive")
	}

	if strings.TrimSpace(c.DatabaseName) == "" || strings.TrimSpace(c.CollectionName) == "" {
		return fmt.Errorf("config: DB_NAME and COLLECTION_NAME required")
	}
	return nil
}

// Addr devuelve ":PORT".
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
