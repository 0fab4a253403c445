package mail

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends a plain-text email. Delivery is best-effort: callers log
// failures as warnings and never fail the request over them.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

// NoopMailer drops mail on the floor. Used when SMTP is not configured so the
// rest of the application keeps working without a relay.
type NoopMailer struct{}

func (NoopMailer) Send(to, subject, body string) error {
	log.Printf("mail disabled, skipping message to %s: %s", to, subject)
	return nil
}
