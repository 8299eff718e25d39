package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lead4tomorrow/daybook/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) GetByDate(ctx context.Context, month, day int) (*Entry, error) {
	query :=
		`SELECT e.month, e.day, COALESCE(t.title, ''), e.body
		 FROM entries e
		 LEFT JOIN themes t ON t.month = e.month
		 WHERE e.month = $1 AND e.day = $2
		 `

	entry := &Entry{}
	err := r.db.QueryRowContext(ctx, query, month, day).Scan(
		&entry.Month, &entry.Day, &entry.Theme, &entry.Body)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return entry, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, entry *Entry) error {

	themeQuery :=
		`INSERT INTO themes (month, title)
		 VALUES ($1, $2)
		 ON CONFLICT (month) DO UPDATE SET title = EXCLUDED.title
		 `

	if entry.Theme != "" {
		if _, err := r.db.ExecContext(ctx, themeQuery, entry.Month, entry.Theme); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
	}

	entryQuery :=
		`INSERT INTO entries (month, day, body)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (month, day) DO UPDATE SET body = EXCLUDED.body
		 `

	if _, err := r.db.ExecContext(ctx, entryQuery, entry.Month, entry.Day, entry.Body); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}
