package devices

import (
	"context"
)

type Repository interface {
	Register(ctx context.Context, device *Device) (*Device, error)
	ListByEmail(ctx context.Context, email string) ([]*Device, error)
	DeleteByEmail(ctx context.Context, email string) error
}
