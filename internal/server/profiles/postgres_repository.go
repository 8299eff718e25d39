package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lead4tomorrow/daybook/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, profile *Profile) (*Profile, error) {

	query :=
		`INSERT INTO profiles (email, password_hash, phone, carrier, method, timezone, notify_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		profile.Email, profile.PasswordHash, profile.Phone, profile.Carrier,
		profile.Method, profile.Timezone, profile.Time)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return profile, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	query :=
		`SELECT email, password_hash, phone, carrier, method, timezone, notify_time FROM profiles
		 WHERE email = $1
		 `

	profile := &Profile{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&profile.Email, &profile.PasswordHash, &profile.Phone, &profile.Carrier,
		&profile.Method, &profile.Timezone, &profile.Time)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return profile, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Profile, error) {
	query := `SELECT email, password_hash, phone, carrier, method, timezone, notify_time FROM profiles`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []*Profile
	for rows.Next() {
		profile := &Profile{}
		err := rows.Scan(&profile.Email, &profile.PasswordHash, &profile.Phone,
			&profile.Carrier, &profile.Method, &profile.Timezone, &profile.Time)
		if err != nil {
			return nil, fmt.Errorf("error performing sql request: %v", err)
		}
		result = append(result, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) UpdatePrefs(ctx context.Context, profile *Profile) error {
	query :=
		`UPDATE profiles
		 SET phone = $2, carrier = $3, method = $4, timezone = $5, notify_time = $6
		 WHERE email = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		profile.Email, profile.Phone, profile.Carrier, profile.Method,
		profile.Timezone, profile.Time)

	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if rows == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, email string) error {
	query := `DELETE FROM profiles WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if rows == 0 {
		return common.ErrorNotFound
	}

	return nil
}
