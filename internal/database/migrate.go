package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	// database/sql driver used only for migrations; runtime queries go
	// through pgxpool
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrations embed.FS

// applies all pending migrations, including the default plan and SEO
// seed rows
func RunMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer db.Close() //nolint:errcheck // best-effort cleanup

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.Up(db, "migrations")
}
