package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/lead4tomorrow/daybook/internal/client/api"
	"github.com/lead4tomorrow/daybook/internal/logging"
)

// fakeClient implements api.Client for unit tests. It records the last
// arguments of every call and counts invocations so tests can assert that
// validation failures never reach the network.
type fakeClient struct {
	Calls int

	LoginErr       error
	LastLoginEmail string
	LastLoginPass  string

	CreateErr       error
	LastCreateEmail string
	LastCreatePass  string

	GetProfileRet *api.Profile
	GetProfileErr error
	LastGetEmail  string

	UpdateErr   error
	LastUpdated *api.Profile

	DeleteErr       error
	LastDeleteEmail string

	GetEntryRet          *api.Entry
	GetEntryErr          error
	LastMonth, LastDay   int

	RegisterDeviceErr error
	LastDeviceEmail   string
	LastDeviceToken   string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) error {
	f.Calls++
	f.LastLoginEmail, f.LastLoginPass = email, password
	return f.LoginErr
}

func (f *fakeClient) CreateProfile(ctx context.Context, email, password string) error {
	f.Calls++
	f.LastCreateEmail, f.LastCreatePass = email, password
	return f.CreateErr
}

func (f *fakeClient) GetProfile(ctx context.Context, email string) (*api.Profile, error) {
	f.Calls++
	f.LastGetEmail = email
	return f.GetProfileRet, f.GetProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, profile *api.Profile) error {
	f.Calls++
	copied := *profile
	f.LastUpdated = &copied
	return f.UpdateErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context, email string) error {
	f.Calls++
	f.LastDeleteEmail = email
	return f.DeleteErr
}

func (f *fakeClient) GetEntry(ctx context.Context, month, day int) (*api.Entry, error) {
	f.Calls++
	f.LastMonth, f.LastDay = month, day
	return f.GetEntryRet, f.GetEntryErr
}

func (f *fakeClient) RegisterDevice(ctx context.Context, email, deviceToken string) error {
	f.Calls++
	f.LastDeviceEmail, f.LastDeviceToken = email, deviceToken
	return f.RegisterDeviceErr
}

// fakeStore is an in-memory metadata.Repository.
type fakeStore struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
