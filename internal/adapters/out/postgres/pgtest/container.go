// Package pgtest starts a disposable Postgres for integration suites and applies
// the real schema migrations to it.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"tastyfood/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated Postgres running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, connects gorm to it and applies all migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Reset removes every order, driver, staff member and credential. The seeded
// menu catalog is kept.
func (d *Database) Reset() error {
	return d.DB.Exec(
		"TRUNCATE TABLE order_line_items, orders, drivers, login_credentials, staff RESTART IDENTITY CASCADE",
	).Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// InsertDriver stores a driver row and returns its generated key.
func (d *Database) InsertDriver(firstName, lastName, status string, available bool) (int, error) {
	var id int
	err := d.DB.Raw(`
		INSERT INTO drivers (first_name, last_name, employment_status, availability_status, status)
		VALUES (?, ?, TRUE, ?, ?)
		RETURNING driver_id
	`, firstName, lastName, available, status).Scan(&id).Error
	return id, err
}
