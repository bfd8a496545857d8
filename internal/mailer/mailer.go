// Package mailer delivers verification mail. It is a narrow collaborator:
// the auth service hands it an address and a link, nothing more.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Mailer sends an email-verification link to the given address.
type Mailer interface {
	SendVerification(to, link string) error
}

// SMTPMailer sends mail over plain SMTP with optional AUTH.
type SMTPMailer struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates a mailer for the given server. username may be
// empty for servers that accept unauthenticated relay (local dev).
func NewSMTPMailer(addr, from, username, password string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		host, _, _ := strings.Cut(addr, ":")
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{addr: addr, from: from, auth: auth}
}

// SendVerification delivers the verification link.
func (m *SMTPMailer) SendVerification(to, link string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Verify your email\r\n\r\nClick the link to verify your account (valid for 15 minutes):\r\n\r\n%s\r\n",
		m.from, to, link,
	)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}
	return nil
}

// LogMailer logs the link instead of sending mail. Used when SMTP is not
// configured so local signups stay verifiable from the server log.
type LogMailer struct{}

// SendVerification logs the verification link.
func (LogMailer) SendVerification(to, link string) error {
	slog.Info("Verification mail (SMTP not configured)", "to", to, "link", link)
	return nil
}
