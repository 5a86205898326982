// Package database centralises sqlx connection helpers.  Two drivers are
// supported:
//
//	mysql – go-sql-driver/mysql, also MariaDB.
//	pgx   – jackc/pgx/v5 through its database/sql adapter, for hosted
//	        Postgres.
//
// Public entry point:
//
//	Open(ctx, driver, dsn, opts) – opens, tunes the pool, and pings with
//	                               retries so callers fail fast at boot.
//
// Callers should Close() the returned *sqlx.DB when no longer needed.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Driver names accepted by Open.
const (
	DriverMySQL = "mysql"
	DriverPgx   = "pgx"
)

// Options tunes the pool and the boot-time ping loop.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Retries         int
	RetryBackoff    time.Duration
}

// DefaultOptions suits a single small web process.
var DefaultOptions = Options{
	MaxOpenConns:    15,
	MaxIdleConns:    5,
	ConnMaxLifetime: 30 * time.Minute,
	Retries:         2,
	RetryBackoff:    500 * time.Millisecond,
}

// Open returns a pinged *sqlx.DB for driver and dsn.
func Open(ctx context.Context, driver, dsn string, opts Options) (*sqlx.DB, error) {
	dsn, err := normalizeDSN(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	for attempt := 0; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if attempt >= opts.Retries {
			break
		}
		zap.L().Warn("database ping failed, retrying",
			zap.String("driver", driver), zap.Int("attempt", attempt+1), zap.Error(err))
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(opts.RetryBackoff):
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("database: ping %s: %w", driver, err)
}

// normalizeDSN forces the MySQL options the store depends on: DATETIME
// columns scan into time.Time, UTC timestamps, and RowsAffected counting
// matched rows so an update that changes nothing is not mistaken for a
// missing id.
func normalizeDSN(driver, dsn string) (string, error) {
	switch driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("database: parse mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		cfg.ClientFoundRows = true
		cfg.Loc = time.UTC
		return cfg.FormatDSN(), nil
	case DriverPgx:
		return dsn, nil
	}
	return "", fmt.Errorf("database: unsupported driver %q", driver)
}
