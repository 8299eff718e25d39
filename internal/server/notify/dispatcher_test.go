package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lead4tomorrow/daybook/internal/logging"
	"github.com/lead4tomorrow/daybook/internal/server/entries"
	"github.com/lead4tomorrow/daybook/internal/server/profiles"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *profiles.InMemoryRepository, *entries.InMemoryRepository, *fakeSender) {
	t.Helper()

	profileRepo := profiles.NewInMemoryRepository()
	entryRepo := entries.NewInMemoryRepository()
	sender := &fakeSender{}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewDispatcher(profileRepo, entryRepo, NewNotifier(sender), logger), profileRepo, entryRepo, sender
}

func TestDispatchDue_SendsAtLocalTime(t *testing.T) {
	d, profileRepo, entryRepo, sender := newTestDispatcher(t)
	ctx := context.Background()

	_, err := profileRepo.Create(ctx, &profiles.Profile{
		Email: "a@b.com", Method: "email", Timezone: "-5", Time: "09:00",
	})
	require.NoError(t, err)

	// 14:00 UTC on June 24 is 09:00 at offset -5.
	now := time.Date(2025, 6, 24, 14, 0, 0, 0, time.UTC)

	require.NoError(t, entryRepo.Upsert(ctx, &entries.Entry{Month: 6, Day: 24, Theme: "Connection", Body: "Reach out."}))

	d.DispatchDue(ctx, now)
	assert.Equal(t, "a@b.com", sender.LastTo)
	assert.Equal(t, "Reach out.", sender.LastBody)
}

func TestDispatchDue_SkipsWhenNotDue(t *testing.T) {
	d, profileRepo, entryRepo, sender := newTestDispatcher(t)
	ctx := context.Background()

	_, err := profileRepo.Create(ctx, &profiles.Profile{
		Email: "a@b.com", Method: "email", Timezone: "-5", Time: "09:00",
	})
	require.NoError(t, err)
	require.NoError(t, entryRepo.Upsert(ctx, &entries.Entry{Month: 6, Day: 24, Body: "Reach out."}))

	d.DispatchDue(ctx, time.Date(2025, 6, 24, 15, 0, 0, 0, time.UTC))
	assert.Empty(t, sender.LastTo)
}

func TestDispatchDue_UsesLocalDateAcrossMidnight(t *testing.T) {
	d, profileRepo, entryRepo, sender := newTestDispatcher(t)
	ctx := context.Background()

	_, err := profileRepo.Create(ctx, &profiles.Profile{
		Email: "a@b.com", Method: "email", Timezone: "-5", Time: "23:00",
	})
	require.NoError(t, err)

	// 04:00 UTC June 25 is 23:00 June 24 at offset -5.
	require.NoError(t, entryRepo.Upsert(ctx, &entries.Entry{Month: 6, Day: 24, Body: "Still the 24th."}))

	d.DispatchDue(ctx, time.Date(2025, 6, 25, 4, 0, 0, 0, time.UTC))
	assert.Equal(t, "Still the 24th.", sender.LastBody)
}

func TestDispatchDue_MissingEntrySkipsProfile(t *testing.T) {
	d, profileRepo, _, sender := newTestDispatcher(t)
	ctx := context.Background()

	_, err := profileRepo.Create(ctx, &profiles.Profile{
		Email: "a@b.com", Method: "email", Timezone: "0", Time: "09:00",
	})
	require.NoError(t, err)

	d.DispatchDue(ctx, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, sender.LastTo)
}

func TestDispatchDue_TextProfileUsesGateway(t *testing.T) {
	d, profileRepo, entryRepo, sender := newTestDispatcher(t)
	ctx := context.Background()

	_, err := profileRepo.Create(ctx, &profiles.Profile{
		Email: "a@b.com", Method: "text", Phone: "5551234567", Carrier: "verizon",
		Timezone: "0", Time: "08:30",
	})
	require.NoError(t, err)
	require.NoError(t, entryRepo.Upsert(ctx, &entries.Entry{Month: 1, Day: 15, Body: "Hi."}))

	d.DispatchDue(ctx, time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC))
	assert.Equal(t, "5551234567@vtext.com", sender.LastTo)
}
