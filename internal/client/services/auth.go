// Package services contains the application services behind the Daybook
// client: authentication, notification profile sync, account deletion,
// device token registration, and daily entry retrieval. Each service is
// constructed with its dependencies; none of them reach for globals.
package services

import (
	"context"
	"errors"

	"github.com/lead4tomorrow/daybook/internal/client/api"
	"github.com/lead4tomorrow/daybook/internal/client/repositories/metadata"
	"github.com/lead4tomorrow/daybook/internal/client/session"
	"github.com/lead4tomorrow/daybook/internal/logging"
)

// User-facing flow errors. The texts are shown verbatim in the UI, so they
// keep sentence form.
var (
	ErrCredentialsRequired = errors.New("Email and password are required.")
	ErrAllFieldsRequired   = errors.New("Email and both password fields are required.")
	ErrPasswordMismatch    = errors.New("Passwords do not match.")
	ErrLoginFailed         = errors.New("Invalid email or password.")
	ErrCreateFailed        = errors.New("Failed to create account.")
	ErrNotSignedIn         = errors.New("not signed in")
)

// AuthService implements the login and account creation flows.
type AuthService struct {
	client  api.Client
	session *session.Session
	store   metadata.Repository
	logger  logging.Logger
}

func NewAuthService(client api.Client, sess *session.Session, store metadata.Repository, logger logging.Logger) *AuthService {
	return &AuthService{client: client, session: sess, store: store, logger: logger}
}

// Login validates the credentials locally, authenticates against the
// backend, and on success flips the session to signed-in. The signed-in
// email is also mirrored into the local store so the out-of-band device
// token callback can find it. Validation failures never reach the network.
//
// Any non-200 response maps to ErrLoginFailed; transport failures are
// returned verbatim so the user sees the real network detail.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrCredentialsRequired
	}

	if err := s.client.Login(ctx, email, password); err != nil {
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			return err
		}
		return ErrLoginFailed
	}

	s.session.SignIn(email)

	if err := s.store.Set(ctx, metadata.KeyEmail, []byte(email)); err != nil {
		// Login itself succeeded; device registration will just be a no-op
		// until the next successful write.
		s.logger.Warn(ctx, "failed to store signed-in email", "error", err)
	}
	return nil
}

// Register creates a new account. On success it invokes backToLogin and
// returns nil; it never signs the user in. A structured {"error"} message
// from the server is surfaced as-is, any other server failure becomes
// ErrCreateFailed.
func (s *AuthService) Register(ctx context.Context, email, password, confirmPassword string, backToLogin func()) error {
	if email == "" || password == "" || confirmPassword == "" {
		return ErrAllFieldsRequired
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	if err := s.client.CreateProfile(ctx, email, password); err != nil {
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			return err
		}
		var srvErr *api.ServerError
		if errors.As(err, &srvErr) && srvErr.Message != "" {
			return errors.New(srvErr.Message)
		}
		return ErrCreateFailed
	}

	if backToLogin != nil {
		backToLogin()
	}
	return nil
}

// Logout resets the session. The server is not involved and the locally
// stored email is kept, matching how the mobile app left its preference
// store alone on sign-out.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.SignOut()
}
