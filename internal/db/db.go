package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/assetledger/apiserver/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

const (
	defaultPingTimeout  = 5 * time.Second
	defaultConnMaxIdle  = 2 * time.Minute
	defaultConnMaxLife  = 30 * time.Minute
	defaultMaxIdleConns = 5
	defaultMaxOpenConns = 25
)

// Open connects to PostgreSQL with the configured driver and verifies the
// connection before returning the pool.
func Open(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	driver, err := driverName(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, BuildDSN(cfg.Database))
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(defaultConnMaxIdle)
	db.SetConnMaxLifetime(defaultConnMaxLife)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)

	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Database.Host, err)
	}

	return db, nil
}

// BuildDSN renders the connection URL understood by both lib/pq and pgx.
func BuildDSN(cfg config.DatabaseConfig) string {
	sslmode := "disable"
	if cfg.UseSSL {
		sslmode = "require"
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		User:   url.UserPassword(cfg.User, cfg.Password),
		Path:   cfg.DBName,
	}

	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

func driverName(driver string) (string, error) {
	switch driver {
	case "", config.DriverPQ:
		return config.DriverPQ, nil
	case config.DriverPGX:
		return config.DriverPGX, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
