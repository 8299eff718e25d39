package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPSender sends mail through a plain SMTP relay without auth. sendMail
// is a test seam for smtp.SendMail.
type SMTPSender struct {
	addr     string
	from     string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{addr: addr, from: from, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.from, to, subject, body)

	if err := s.sendMail(s.addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send error: %w", err)
	}

	return nil
}
