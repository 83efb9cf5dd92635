// Package db provides the GORM database handle used by the repositories.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	tasksentity "todo_backend/internal/feature/tasks/domain/entity"
)

const (
	connectDeadline = 60 * time.Second
	connectRetry    = 3 * time.Second
)

// Dialector selects the GORM driver for the given DSN.
// A postgres:// URL (or key=value DSN) opens PostgreSQL, anything else is
// treated as an SQLite file path. ":memory:" works for tests.
func Dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// Open connects to the database, retrying until the deadline elapses.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Open(dsn string) (*gorm.DB, error) {
	dialector := Dialector(dsn)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectDeadline)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", connectDeadline, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(connectRetry)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity in the system.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&tasksentity.Task{},
	)
}

// Pinger wraps a gorm.DB for connectivity probes at the health endpoint.
type Pinger struct {
	db *gorm.DB
}

// NewPinger creates a Pinger for the given database handle.
func NewPinger(db *gorm.DB) *Pinger {
	return &Pinger{db: db}
}

// Ping runs a trivial query to verify the store is reachable.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.db.WithContext(ctx).Exec("SELECT 1").Error
}
