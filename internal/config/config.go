package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MinBcryptCost is the lowest bcrypt cost accepted for password hashing.
const MinBcryptCost = 10

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	Diag      Diag     `envPrefix:"DIAG_"`
	Database  Database `envPrefix:"DATABASE_"`
	JWT       JWT      `envPrefix:"JWT_"`
	Password  Password `envPrefix:"PASSWORD_"`
}

// HTTP contains API server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Diag contains diagnostics (metrics) server parameters.
// An empty port disables the server.
type Diag struct {
	Port string `env:"PORT" envDefault:"9999"`
}

// Database contains database connection parameters.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	DSN    string `env:"DSN" envDefault:"postgres://kb:kb@localhost:5432/kb?sslmode=disable"`
}

// JWT contains JWT-related parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"devsecret"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"`
}

// Password contains password hashing parameters.
type Password struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// NewConfig loads configuration from environment variables. Variables from
// the given dotenv files are loaded first without overriding the environment;
// missing files are skipped.
func NewConfig(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is empty")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is empty")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("jwt ttl must be positive, got %s", c.JWT.TTL)
	}
	if c.Password.BcryptCost < MinBcryptCost || c.Password.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d, got %d", MinBcryptCost, bcrypt.MaxCost, c.Password.BcryptCost)
	}
	return nil
}
