package profiles

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	ListAll(ctx context.Context) ([]*Profile, error)
	UpdatePrefs(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, email string) error
}
