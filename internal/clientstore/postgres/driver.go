package postgres

import (
	"context"
	"embed"
	"errors"
	"github.com/Masterminds/squirrel"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"time"
)

//go:embed migrations/*.sql
var migrations embed.FS

const tableEntries = "client_store_entries"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Driver represents the PostgreSQL client store driver implementation
type Driver struct {
	dsn string
	db  *pgxpool.Pool
}

var _ clientstore.Driver = (*Driver)(nil)

// New creates a new empty PostgreSQL client store driver.
// Use Initialize to open the database connection.
func New(dsn string) *Driver {
	return &Driver{
		dsn: dsn,
	}
}

// Initialize opens the database connection and migrates the database
func (driver *Driver) Initialize(ctx context.Context) error {
	// Perform SQL migrations
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, driver.dsn)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	// Initialize the database connection pool
	pool, err := pgxpool.Connect(ctx, driver.dsn)
	if err != nil {
		return err
	}
	driver.db = pool
	return nil
}

// Get retrieves the value stored under key inside scope
func (driver *Driver) Get(ctx context.Context, scope, key string) (string, bool, error) {
	sql, vals, err := psql.Select("value").
		From(tableEntries).
		Where(squirrel.Eq{"scope": scope, "key": key}).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	if err := driver.db.QueryRow(ctx, sql, vals...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key inside scope
func (driver *Driver) Set(ctx context.Context, scope, key, value string) error {
	sql, vals, err := psql.Insert(tableEntries).
		Columns("scope", "key", "value", "updated_at").
		Values(scope, key, value, time.Now()).
		Suffix("ON CONFLICT (scope, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = driver.db.Exec(ctx, sql, vals...)
	return err
}

// Remove deletes the value stored under key inside scope
func (driver *Driver) Remove(ctx context.Context, scope, key string) error {
	sql, vals, err := psql.Delete(tableEntries).
		Where(squirrel.Eq{"scope": scope, "key": key}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = driver.db.Exec(ctx, sql, vals...)
	return err
}

// RemoveExpired deletes every entry that was last written before the given time
func (driver *Driver) RemoveExpired(ctx context.Context, before time.Time) (int, error) {
	sql, vals, err := psql.Delete(tableEntries).
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := driver.db.Exec(ctx, sql, vals...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Close closes the database connection
func (driver *Driver) Close() {
	if driver.db != nil {
		driver.db.Close()
		driver.db = nil
	}
}
