package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/vaultpass/credgen/internal/logger"
)

//go:embed migrations
var migrations embed.FS

// goose keeps its base FS and dialect in package globals.
var migrateMu sync.Mutex

// Migrate applies the embedded schema migrations for d.
func Migrate(ctx context.Context, db *sql.DB, d Dialect, log logger.Logger) error {
	gooseDialect, err := d.gooseDialect()
	if err != nil {
		return err
	}

	dir, err := fs.Sub(migrations, "migrations/"+string(d))
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", d, err)
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(dir)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (d Dialect) gooseDialect() (string, error) {
	switch d {
	case DialectMySQL:
		return "mysql", nil
	case DialectSQLite:
		return "sqlite3", nil
	case DialectPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", string(d))
	}
}

// gooseLogger routes goose output through the application logger. Fatalf is
// logged as an error instead of exiting.
type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Fatalf(format string, v ...any) { g.log.Errorf(format, v...) }
func (g gooseLogger) Printf(format string, v ...any) { g.log.Infof(format, v...) }
