package db

import (
	"context"
	"database/sql"

	"github.com/lead4tomorrow/daybook/internal/server/devices"
	"github.com/lead4tomorrow/daybook/internal/server/entries"
	"github.com/lead4tomorrow/daybook/internal/server/profiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Profiles() profiles.Repository
	Devices() devices.Repository
	Entries() entries.Repository
}
