// Package database applies the embedded schema migrations.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/logger"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

func (d Dialect) dir() (string, error) {
	switch d {
	case Postgres:
		return "migrations/postgres", nil
	case SQLite:
		return "migrations/sqlite", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}

// goose keeps its settings in package globals.
var mu sync.Mutex

// Up applies all pending migrations of the dialect to db.
func Up(ctx context.Context, db *sql.DB, dialect Dialect, log *logger.Logger) error {
	dir, err := dialect.dir()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// Migrate opens a short-lived connection to the postgres dsn and applies migrations.
func Migrate(ctx context.Context, dsn string, log *logger.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	return Up(ctx, db, Postgres, log)
}

type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	if g.log == nil {
		return
	}
	g.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	if g.log == nil {
		panic(msg)
	}
	g.log.Fatal(msg, "component", "migrations")
}
