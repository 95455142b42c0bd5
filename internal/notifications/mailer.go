// Package notifications sends the transactional emails for bookings,
// enrollments and contact messages over SMTP.
package notifications

import (
	"errors"
	"strings"

	"gopkg.in/gomail.v2"
)

// Mailer wraps an SMTP dialer. NewMailer returns nil when the SMTP host is
// not configured; a nil mailer disables email entirely.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user, password, from string) *Mailer {
	if strings.TrimSpace(host) == "" || strings.TrimSpace(from) == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *Mailer) SendHTML(toEmail, toName, subject, htmlBody string) error {
	if m == nil {
		return errors.New("mailer is nil")
	}
	if strings.TrimSpace(toEmail) == "" {
		return errors.New("missing recipient email")
	}
	if strings.TrimSpace(subject) == "" {
		return errors.New("missing subject")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	if toName != "" {
		msg.SetAddressHeader("To", toEmail, toName)
	} else {
		msg.SetHeader("To", toEmail)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
