package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/lead4tomorrow/daybook/internal/logging"
	"github.com/lead4tomorrow/daybook/internal/server/entries"
	"github.com/lead4tomorrow/daybook/internal/server/profiles"
)

// Dispatcher delivers the daily entry to each profile when that profile's
// local clock reaches its configured notification time. Profiles store
// the timezone as a signed UTC offset in hours.
type Dispatcher struct {
	profiles profiles.Repository
	entries  entries.Repository
	notifier *Notifier
	logger   logging.Logger
}

func NewDispatcher(profileRepo profiles.Repository, entryRepo entries.Repository, notifier *Notifier, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		profiles: profileRepo,
		entries:  entryRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Run ticks once a minute until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.DispatchDue(ctx, now.UTC())
		}
	}
}

// DispatchDue sends to every profile whose local time matches now to the
// minute. A failed send is logged and does not block other profiles.
func (d *Dispatcher) DispatchDue(ctx context.Context, now time.Time) {
	all, err := d.profiles.ListAll(ctx)
	if err != nil {
		d.logger.Error(ctx, "profile listing failed", "error", err)
		return
	}

	for _, p := range all {
		local := localTime(now, p.Timezone)
		if local.Format("15:04") != p.Time {
			continue
		}

		entry, err := d.entries.GetByDate(ctx, int(local.Month()), local.Day())
		if err != nil {
			d.logger.Warn(ctx, "no entry to send", "month", int(local.Month()), "day", local.Day(), "error", err)
			continue
		}

		if err := d.notifier.Notify(ctx, p, entry); err != nil {
			d.logger.Error(ctx, "delivery failed", "email", p.Email, "error", err)
		}
	}
}

func localTime(now time.Time, offset string) time.Time {
	hours, err := strconv.Atoi(offset)
	if err != nil {
		return now
	}
	return now.Add(time.Duration(hours) * time.Hour)
}
