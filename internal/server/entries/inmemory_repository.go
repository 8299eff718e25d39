package entries

import (
	"context"
	"sync"

	"github.com/lead4tomorrow/daybook/internal/common"
)

type dateKey struct {
	month int
	day   int
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	themes  map[int]string
	entries map[dateKey]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		themes:  make(map[int]string),
		entries: make(map[dateKey]string),
	}
}

func (r *InMemoryRepository) GetByDate(ctx context.Context, month, day int) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	body, ok := r.entries[dateKey{month, day}]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &Entry{Month: month, Day: day, Theme: r.themes[month], Body: body}, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, entry *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.Theme != "" {
		r.themes[entry.Month] = entry.Theme
	}
	r.entries[dateKey{entry.Month, entry.Day}] = entry.Body
	return nil
}
