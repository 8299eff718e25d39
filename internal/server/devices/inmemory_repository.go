package devices

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	byToken map[string]Device
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byToken: make(map[string]Device)}
}

func (r *InMemoryRepository) Register(ctx context.Context, device *Device) (*Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byToken[device.Token]; ok {
		device.ID = existing.ID
	} else if device.ID == "" {
		device.ID = uuid.NewString()
	}
	r.byToken[device.Token] = *device
	return device, nil
}

func (r *InMemoryRepository) ListByEmail(ctx context.Context, email string) ([]*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Device
	for _, device := range r.byToken {
		if device.Email == email {
			d := device
			result = append(result, &d)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for token, device := range r.byToken {
		if device.Email == email {
			delete(r.byToken, token)
		}
	}
	return nil
}
