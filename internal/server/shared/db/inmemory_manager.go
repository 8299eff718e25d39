package db

import (
	"context"
	"database/sql"

	"github.com/lead4tomorrow/daybook/internal/server/devices"
	"github.com/lead4tomorrow/daybook/internal/server/entries"
	"github.com/lead4tomorrow/daybook/internal/server/profiles"
)

type InMemoryRepositoryManager struct {
	profiles profiles.Repository
	devices  devices.Repository
	entries  entries.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m InMemoryRepositoryManager) Devices() devices.Repository {
	return m.devices
}

func (m InMemoryRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		profiles: profiles.NewInMemoryRepository(),
		devices:  devices.NewInMemoryRepository(),
		entries:  entries.NewInMemoryRepository(),
	}
}
