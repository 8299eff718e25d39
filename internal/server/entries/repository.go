package entries

import (
	"context"
)

type Repository interface {
	GetByDate(ctx context.Context, month, day int) (*Entry, error)
	Upsert(ctx context.Context, entry *Entry) error
}
