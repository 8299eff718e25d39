package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lead4tomorrow/daybook/internal/client/api"
	"github.com/lead4tomorrow/daybook/internal/client/repositories/metadata"
	"github.com/lead4tomorrow/daybook/internal/client/session"
	"github.com/lead4tomorrow/daybook/internal/logging"
	"github.com/lead4tomorrow/daybook/internal/tzx"
)

// Delivery methods as the user sees them; the wire carries them lowercase.
const (
	MethodEmail = "Email"
	MethodText  = "Text"
)

// Carriers accepted for the text delivery method.
var Carriers = []string{"att", "tmobile", "verizon", "sprint"}

// Profile defaults, also applied when notifications are turned off.
const (
	DefaultCarrier = "att"
	DefaultTime    = "09:00"
)

// ProfileState is the editable notification profile plus its presentation
// flags. Collapsed toggles between the read-only summary and the editable
// form; neither flag is ever sent to the server.
type ProfileState struct {
	Phone     string
	Carrier   string
	Method    string
	Timezone  string // IANA identifier, one of tzx.Zones
	Time      string // "HH:MM"
	Enabled   bool
	Collapsed bool
}

func defaultState() ProfileState {
	return ProfileState{
		Carrier:  DefaultCarrier,
		Method:   MethodEmail,
		Timezone: tzx.DefaultZone,
		Time:     DefaultTime,
	}
}

// ProfileService implements the notification profile sync flow.
type ProfileService struct {
	client  api.Client
	session *session.Session
	store   metadata.Repository
	logger  logging.Logger

	mu    sync.Mutex
	state ProfileState
}

func NewProfileService(client api.Client, sess *session.Session, store metadata.Repository, logger logging.Logger) *ProfileService {
	return &ProfileService{
		client:  client,
		session: sess,
		store:   store,
		logger:  logger,
		state:   defaultState(),
	}
}

// State returns a copy of the current profile state.
func (s *ProfileService) State() ProfileState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load fetches the stored profile for the signed-in email and rebuilds the
// local state from it. The wire timezone is a signed offset-hours string;
// it maps back to a zone identifier by exact offset match over the
// supported zones, defaulting to Eastern. A missing or malformed time falls
// back to 09:00. Notifications are marked enabled on any successful load,
// with the form open for editing.
func (s *ProfileService) Load(ctx context.Context) error {
	email := s.session.Email()
	if email == "" {
		return ErrNotSignedIn
	}

	p, err := s.client.GetProfile(ctx, email)
	if err != nil {
		return err
	}

	st := defaultState()
	st.Phone = p.Phone
	if isCarrier(p.Carrier) {
		st.Carrier = p.Carrier
	}
	switch strings.ToLower(p.Method) {
	case "text":
		st.Method = MethodText
	case "email":
		st.Method = MethodEmail
	}
	if hours, err := strconv.Atoi(p.Timezone); err == nil {
		st.Timezone = tzx.ZoneByOffset(hours)
	}
	if isClockTime(p.Time) {
		st.Time = p.Time
	}
	st.Enabled = true
	st.Collapsed = false

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// Save pushes the current state to the backend: delivery time as "HH:MM",
// timezone as its current signed offset in hours, method lowercased. On
// success the form collapses to the read-only summary and the local
// schedule marker is refreshed.
func (s *ProfileService) Save(ctx context.Context) error {
	email := s.session.Email()
	if email == "" {
		return ErrNotSignedIn
	}

	st := s.State()
	wire := &api.Profile{
		Email:    email,
		Phone:    st.Phone,
		Carrier:  st.Carrier,
		Method:   strings.ToLower(st.Method),
		Timezone: strconv.Itoa(tzx.OffsetHours(st.Timezone)),
		Time:     st.Time,
	}

	if err := s.client.UpdateProfile(ctx, wire); err != nil {
		s.logger.Error(ctx, "profile save failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.state.Collapsed = true
	s.mu.Unlock()

	if err := s.store.Set(ctx, metadata.KeySchedule, []byte(st.Time)); err != nil {
		s.logger.Warn(ctx, "failed to record local schedule", "error", err)
	}
	return nil
}

// EditAgain reopens the collapsed summary for editing.
func (s *ProfileService) EditAgain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Collapsed = false
}

// Enable turns notifications on locally; nothing is persisted until Save.
func (s *ProfileService) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Enabled = true
}

// Disable turns notifications off: the locally scheduled reminder is
// cleared and every field resets to its default. The server-side profile
// is deliberately left alone.
func (s *ProfileService) Disable(ctx context.Context) error {
	s.mu.Lock()
	s.state = defaultState()
	s.mu.Unlock()

	if err := s.store.Delete(ctx, metadata.KeySchedule); err != nil {
		return err
	}
	return nil
}

func (s *ProfileService) SetPhone(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phone = strings.TrimSpace(v)
}

func (s *ProfileService) SetCarrier(v string) error {
	if !isCarrier(v) {
		return errInvalidValue("carrier", v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Carrier = v
	return nil
}

func (s *ProfileService) SetMethod(v string) error {
	if v != MethodEmail && v != MethodText {
		return errInvalidValue("method", v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Method = v
	return nil
}

func (s *ProfileService) SetTimezone(id string) error {
	if !tzx.IsSupported(id) {
		return errInvalidValue("timezone", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Timezone = id
	return nil
}

func (s *ProfileService) SetTime(v string) error {
	if !isClockTime(v) {
		return errInvalidValue("time", v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Time = v
	return nil
}

func isCarrier(v string) bool {
	for _, c := range Carriers {
		if c == v {
			return true
		}
	}
	return false
}

func isClockTime(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}
