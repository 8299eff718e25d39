package devices

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Register(ctx context.Context, device *Device) (*Device, error) {

	if device.ID == "" {
		device.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO devices (id, email, token)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (token) DO UPDATE SET email = EXCLUDED.email
		 `

	_, err := r.db.ExecContext(ctx, query, device.ID, device.Email, device.Token)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return device, nil
}

func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]*Device, error) {
	query := `SELECT id, email, token FROM devices WHERE email = $1`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []*Device
	for rows.Next() {
		device := &Device{}
		if err := rows.Scan(&device.ID, &device.Email, &device.Token); err != nil {
			return nil, fmt.Errorf("error performing sql request: %v", err)
		}
		result = append(result, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM devices WHERE email = $1`

	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}
