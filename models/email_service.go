package models

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

// OutboundEmail is the payload handed to the mail transport. Composition
// happens in the services layer; this type only carries the result.
type OutboundEmail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

type EmailService struct {
	dialer  *gomail.Dialer
	timeout time.Duration
}

// NewEmailService fails when the SMTP credentials are absent so callers can
// surface a service-misconfiguration error before composing anything.
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)
	if os.Getenv("SMTP_SECURE") == "true" {
		dialer.SSL = true
	}

	return &EmailService{dialer: dialer, timeout: 20 * time.Second}, nil
}

// Send delivers one email with a hard timeout around the SMTP exchange so a
// hung transport cannot block the submission indefinitely.
func (s *EmailService) Send(email OutboundEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", email.From)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetBody("text/html", email.HTML)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-time.After(s.timeout):
		return fmt.Errorf("email delivery timed out after %s", s.timeout)
	}
}
