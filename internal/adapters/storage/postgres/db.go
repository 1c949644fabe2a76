package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotConfigured = errors.New("postgres: dsn is empty")
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
// Si no hay conectividad devuelve error: es un fallo de setup, no se enmascara.
func Open(ctx context.Context, dsn string, timeout time.Duration) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrNotConfigured
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	// defaults razonables: el dashboard solo lee
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return db, nil
}

// EnsureCollection crea schema (=database) y tabla (=collection) si no existen.
func EnsureCollection(ctx context.Context, db *sql.DB, database, collection string) error {
	schema := pgx.Identifier{database}.Sanitize()
	table := pgx.Identifier{database, collection}.Sanitize()

	stmts := []string{
		`CREATE SCHEMA IF NOT EXISTS ` + schema,
		`CREATE TABLE IF NOT EXISTS ` + table + ` (
			id   UUID PRIMARY KEY,
			seq  BIGSERIAL NOT NULL,
			data JSONB NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("postgres: ensure %s: %w", table, err)
		}
	}
	return nil
}
