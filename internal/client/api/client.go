// Package api contains the HTTP client the Daybook app uses to talk to the
// backend. Services depend on the Client interface; the concrete
// implementation over net/http lives in httpclient.go.
package api

import "context"

// Profile is a notification profile as it travels over the wire. Timezone
// is a signed UTC offset in whole hours, rendered as a string; Time is the
// 24-hour "HH:MM" delivery time. Method is lowercase on the wire.
type Profile struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Carrier  string `json:"carrier"`
	Method   string `json:"method"`
	Timezone string `json:"timezone"`
	Time     string `json:"time"`
}

// Entry is one day's calendar message together with its month theme.
type Entry struct {
	Theme string `json:"theme"`
	Entry string `json:"entry"`
}

// Client is the backend API surface. Every call takes a context so a
// caller can cancel its own in-flight request when the surrounding screen
// goes away.
type Client interface {
	// Login authenticates the credentials. A non-200 response comes back
	// as *ServerError, a transport failure as *NetworkError.
	Login(ctx context.Context, email, password string) error

	// CreateProfile registers a new account. It does not log the user in.
	CreateProfile(ctx context.Context, email, password string) error

	// GetProfile fetches the stored notification profile for email.
	GetProfile(ctx context.Context, email string) (*Profile, error)

	// UpdateProfile stores the notification profile.
	UpdateProfile(ctx context.Context, profile *Profile) error

	// DeleteAccount removes the account, trying the backend's route
	// variants in a fixed order until one returns 200. On failure the
	// returned error carries the last variant's raw detail.
	DeleteAccount(ctx context.Context, email string) error

	// GetEntry fetches the calendar entry for a month/day pair.
	GetEntry(ctx context.Context, month, day int) (*Entry, error)

	// RegisterDevice associates a push token with an account.
	RegisterDevice(ctx context.Context, email, deviceToken string) error
}
