package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lead4tomorrow/daybook/internal/server/devices"
	"github.com/lead4tomorrow/daybook/internal/server/entries"
	"github.com/lead4tomorrow/daybook/internal/server/migrations"
	"github.com/lead4tomorrow/daybook/internal/server/profiles"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	profiles profiles.Repository
	devices  devices.Repository
	entries  entries.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *PostgresRepositoryManager) Devices() devices.Repository {
	return m.devices
}

func (m *PostgresRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	profileRepo, err := profiles.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("profile repo creation error: %w", err)
	}

	deviceRepo, err := devices.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("device repo creation error: %w", err)
	}

	entryRepo, err := entries.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("entry repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		profiles: profileRepo,
		devices:  deviceRepo,
		entries:  entryRepo,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
