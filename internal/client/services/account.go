package services

import (
	"context"
	"strings"

	"github.com/lead4tomorrow/daybook/internal/client/api"
	"github.com/lead4tomorrow/daybook/internal/client/repositories/metadata"
	"github.com/lead4tomorrow/daybook/internal/client/session"
	"github.com/lead4tomorrow/daybook/internal/logging"
)

// AccountService implements the account deletion flow.
type AccountService struct {
	client  api.Client
	session *session.Session
	store   metadata.Repository
	logger  logging.Logger
}

func NewAccountService(client api.Client, sess *session.Session, store metadata.Repository, logger logging.Logger) *AccountService {
	return &AccountService{client: client, session: sess, store: store, logger: logger}
}

// Delete removes the signed-in user's account. The adapter walks the
// backend's deletion route variants in order; on success the session is
// reset and the locally stored email and schedule are wiped. On failure
// the raw server detail is returned unmasked so the backend's inconsistent
// routes stay diagnosable.
func (s *AccountService) Delete(ctx context.Context) error {
	email := strings.TrimSpace(s.session.Email())
	if email == "" {
		return ErrNotSignedIn
	}

	if err := s.client.DeleteAccount(ctx, email); err != nil {
		return err
	}

	s.session.SignOut()

	if err := s.store.Delete(ctx, metadata.KeyEmail); err != nil {
		s.logger.Warn(ctx, "failed to clear stored email", "error", err)
	}
	if err := s.store.Delete(ctx, metadata.KeySchedule); err != nil {
		s.logger.Warn(ctx, "failed to clear local schedule", "error", err)
	}
	return nil
}
