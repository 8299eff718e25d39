package services

import (
	"context"
	"sync"

	"github.com/lead4tomorrow/daybook/internal/client/api"
	"github.com/lead4tomorrow/daybook/internal/client/repositories/metadata"
	"github.com/lead4tomorrow/daybook/internal/logging"
)

// DeviceState tracks push registration progress:
//
//	NotAuthorized → (permission request) → Granted | Denied
//	Granted → (platform issues token) → TokenObtained → Registered | SendFailed
type DeviceState string

const (
	StateNotAuthorized DeviceState = "not_authorized"
	StateDenied        DeviceState = "denied"
	StateGranted       DeviceState = "granted"
	StateTokenObtained DeviceState = "token_obtained"
	StateRegistered    DeviceState = "registered"
	StateSendFailed    DeviceState = "send_failed"
)

// PermissionRequester abstracts the platform's notification permission
// prompt.
type PermissionRequester interface {
	RequestPermission(ctx context.Context) (bool, error)
}

// DeviceService relays platform push tokens to the backend.
type DeviceService struct {
	client api.Client
	store  metadata.Repository
	logger logging.Logger

	mu    sync.Mutex
	state DeviceState
	token string
}

func NewDeviceService(client api.Client, store metadata.Repository, logger logging.Logger) *DeviceService {
	return &DeviceService{client: client, store: store, logger: logger, state: StateNotAuthorized}
}

func (s *DeviceService) State() DeviceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *DeviceService) setState(state DeviceState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// RequestPermission asks the platform for notification permission and
// records the outcome.
func (s *DeviceService) RequestPermission(ctx context.Context, platform PermissionRequester) (bool, error) {
	granted, err := platform.RequestPermission(ctx)
	if err != nil {
		return false, err
	}
	if granted {
		s.setState(StateGranted)
	} else {
		s.setState(StateDenied)
	}
	return granted, nil
}

// HandleToken is the platform token callback. It arrives out of band from
// any screen, so the email comes from the local store rather than the
// session; with no stored email the token is dropped without issuing a
// request. A failed send is recorded and returned but never retried.
func (s *DeviceService) HandleToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.state = StateTokenObtained
	s.token = token
	s.mu.Unlock()

	email, err := s.store.Get(ctx, metadata.KeyEmail)
	if err != nil {
		return err
	}
	if len(email) == 0 {
		s.logger.Warn(ctx, "no stored email, skipping device registration")
		return nil
	}

	if err := s.client.RegisterDevice(ctx, string(email), token); err != nil {
		s.setState(StateSendFailed)
		s.logger.Error(ctx, "device token registration failed", "error", err)
		return err
	}

	s.setState(StateRegistered)
	s.logger.Info(ctx, "device token registered", "email", string(email))
	return nil
}
