package profiles

import (
	"context"
	"sync"

	"github.com/lead4tomorrow/daybook/internal/common"
)

// InMemoryRepository is a map-backed Repository used by handler tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{profiles: make(map[string]Profile)}
}

func (r *InMemoryRepository) Create(ctx context.Context, profile *Profile) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.profiles[profile.Email] = *profile
	return profile, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &profile, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Profile
	for _, profile := range r.profiles {
		p := profile
		result = append(result, &p)
	}
	return result, nil
}

func (r *InMemoryRepository) UpdatePrefs(ctx context.Context, profile *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[profile.Email]
	if !ok {
		return common.ErrorNotFound
	}
	existing.Phone = profile.Phone
	existing.Carrier = profile.Carrier
	existing.Method = profile.Method
	existing.Timezone = profile.Timezone
	existing.Time = profile.Time
	r.profiles[profile.Email] = existing
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[email]; !ok {
		return common.ErrorNotFound
	}
	delete(r.profiles, email)
	return nil
}
