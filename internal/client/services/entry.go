package services

import (
	"context"
	"strconv"
	"time"

	"github.com/lead4tomorrow/daybook/internal/client/api"
)

// EntryService fetches the daily calendar message.
type EntryService struct {
	client api.Client
	now    func() time.Time
}

func NewEntryService(client api.Client) *EntryService {
	return &EntryService{client: client, now: time.Now}
}

// Today returns the current day's entry with its month theme.
func (s *EntryService) Today(ctx context.Context) (*api.Entry, error) {
	now := s.now()
	return s.client.GetEntry(ctx, int(now.Month()), now.Day())
}

// Day returns the entry for a specific month/day pair.
func (s *EntryService) Day(ctx context.Context, month, day int) (*api.Entry, error) {
	if month < 1 || month > 12 {
		return nil, errInvalidValue("month", strconv.Itoa(month))
	}
	if day < 1 || day > 31 {
		return nil, errInvalidValue("day", strconv.Itoa(day))
	}
	return s.client.GetEntry(ctx, month, day)
}
