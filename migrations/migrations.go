// Package migrations embeds the schema and applies it at startup.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var fs embed.FS

// Apply runs all pending migrations against the database at dsn.
// goose needs database/sql, so this opens its own short-lived
// connection next to the pgx pools.
func Apply(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.New("pinging migration connection error: " + err.Error())
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fs)
	if err != nil {
		return errors.New("creating migration provider error: " + err.Error())
	}
	if _, err := provider.Up(ctx); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
