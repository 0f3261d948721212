// Package email sends transactional mail through an SMTP relay.
package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"

	"github.com/huellitas/shelter-backend/internal/config"
	"github.com/wneessen/go-mail"
)

// Client is the SMTP email client
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient builds a Client from the SMTP configuration. Returns nil when no
// SMTP host is configured; a nil client drops every send with a log line.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.SMTPHost == "" {
		return nil, nil
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      cfg.SMTPHost,
		port:      port,
		user:      cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		fromName:  cfg.SMTPFromName,
		fromEmail: cfg.SMTPFromEmail,
	}, nil
}

// Send delivers one HTML email synchronously.
func (c *Client) Send(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendAsync delivers an email from a goroutine after the response is sent.
// Delivery is best-effort; failures are logged, never surfaced to the caller.
func (c *Client) SendAsync(to, subject, htmlBody string) {
	if c == nil {
		log.Printf("email to %s dropped: SMTP not configured", to)
		return
	}
	go func() {
		if err := c.Send(to, subject, htmlBody); err != nil {
			log.Printf("email delivery failed: %v", err)
		}
	}()
}
