package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"entgo.io/ent/dialect"
	"modernc.org/sqlite"

	"github.com/finops-tools/expense-recon/gen/ent"
)

// sqliteDriver adapts modernc.org/sqlite (which registers as "sqlite") to
// the "sqlite3" name ent's dialect expects, and enables foreign keys per
// connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

// OpenSQLite opens a SQLite-backed ent client and creates the schema.
// Used by recon-batch -inmem and integration runs; dsn defaults to a
// private in-memory database.
func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*ent.Client, error) {
	if dsn == "" {
		dsn = "file:expense-recon?mode=memory&cache=shared"
	}
	drv, err := entsql.Open(dialect.SQLite, dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		logger.Error("failed to create sqlite schema", "error", err)
		return nil, err
	}
	logger.Info("sqlite database ready", "dsn", dsn)
	return client, nil
}
