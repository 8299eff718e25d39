// Package notify delivers the daily entry to subscribed accounts. Email
// profiles get the message directly; text profiles go through the
// carrier's email-to-SMS gateway.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/lead4tomorrow/daybook/internal/server/entries"
	"github.com/lead4tomorrow/daybook/internal/server/profiles"
)

// carrierGateways maps a carrier name to its email-to-SMS gateway domain.
var carrierGateways = map[string]string{
	"att":     "txt.att.net",
	"tmobile": "tmomail.net",
	"verizon": "vtext.com",
	"sprint":  "messaging.sprintpcs.com",
}

// Sender delivers a single message. The production implementation talks
// SMTP; tests substitute a recorder.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Recipient resolves the delivery address for a profile. Text delivery
// requires a phone number and a known carrier; anything else falls back
// to the account email.
func Recipient(p *profiles.Profile) string {
	if strings.EqualFold(p.Method, "text") && p.Phone != "" {
		if gateway, ok := carrierGateways[strings.ToLower(p.Carrier)]; ok {
			return p.Phone + "@" + gateway
		}
	}
	return p.Email
}

type Notifier struct {
	sender Sender
}

func NewNotifier(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// Notify sends the entry for the day to the profile's delivery address.
func (n *Notifier) Notify(ctx context.Context, p *profiles.Profile, e *entries.Entry) error {
	subject := e.Theme
	if subject == "" {
		subject = "Daily entry"
	}

	body := e.Body
	if err := n.sender.Send(ctx, Recipient(p), subject, body); err != nil {
		return fmt.Errorf("notify %s: %w", p.Email, err)
	}

	return nil
}
