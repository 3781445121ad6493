// pkg/db/migrate.go
package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration is a named schema script.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded schema scripts in lexical order.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Name: name, SQL: string(body)})
	}
	return migrations, nil
}

// Migrate applies every embedded migration inside a single database transaction.
// The scripts are idempotent, so running Migrate on an up-to-date schema is a no-op.
func Migrate(ctx context.Context, dbConn DBTxBeginner) error {
	migrations, err := Migrations()
	if err != nil {
		return err
	}

	tx, err := BeginTx(ctx, dbConn)
	if err != nil {
		return fmt.Errorf("migrate: failed to begin transaction: %w", err)
	}
	defer RollbackTx(tx)

	for _, m := range migrations {
		if err := execScript(ctx, tx, m); err != nil {
			return err
		}
	}

	if err := CommitTx(tx); err != nil {
		return fmt.Errorf("migrate: failed to commit transaction: %w", err)
	}
	return nil
}

func execScript(ctx context.Context, q sqlx.ExecerContext, m Migration) error {
	if _, err := q.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("migrate: %s: %w", m.Name, err)
	}
	return nil
}
