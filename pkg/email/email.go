package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/retry"
)

// Config holds SMTP settings for the transport.
type Config struct {
	Host     string
	Port     string
	Secure   bool // implicit TLS (usually port 465); otherwise STARTTLS when offered
	Username string
	Password string
	// FromEmail defaults to Username, which is what Gmail and most relays expect.
	FromEmail string
	OAuth     OAuthConfig
	// MaxAttempts bounds delivery attempts per message, including the first.
	MaxAttempts int
	Timeout     time.Duration
}

// SMTPTransport delivers OutboundMessages over SMTP.
type SMTPTransport struct {
	cfg   Config
	auth  smtp.Auth
	retry retry.Config
	now   func() time.Time
}

// NewSMTPTransport creates a transport. It performs no network I/O.
func NewSMTPTransport(cfg Config) *SMTPTransport {
	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.Username
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	t := &SMTPTransport{
		cfg: cfg,
		retry: retry.Config{
			MaxAttempts:    cfg.MaxAttempts,
			InitialBackoff: 500 * time.Millisecond,
			MaxBackoff:     5 * time.Second,
		},
		now: time.Now,
	}
	switch {
	case cfg.OAuth.Enabled():
		t.auth = newXOAuth2(cfg.Username, cfg.OAuth.TokenSource(context.Background()))
	case cfg.Password != "":
		t.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return t
}

// IsConfigured checks if the transport has enough settings to attempt delivery
func (s *SMTPTransport) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.auth != nil
}

// Send delivers msg, retrying transient failures. 5xx replies are not retried.
func (s *SMTPTransport) Send(ctx context.Context, msg domain.OutboundMessage) (domain.DeliveryReceipt, error) {
	if !s.IsConfigured() {
		return domain.DeliveryReceipt{}, domain.ErrTransportNotConfigured
	}
	if msg.Recipient == "" {
		return domain.DeliveryReceipt{}, errors.New("email: message has no recipient")
	}

	sentAt := s.now()
	id := newMessageID(s.cfg.FromEmail)
	raw, err := buildMessage(s.cfg.FromEmail, id, sentAt, msg)
	if err != nil {
		return domain.DeliveryReceipt{}, err
	}

	err = retry.Do(ctx, s.retry, func() error {
		err := s.deliver(ctx, msg.Recipient, raw)
		if isPermanent(err) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return domain.DeliveryReceipt{}, fmt.Errorf("failed to send email to %s: %w", msg.Recipient, err)
	}
	return domain.DeliveryReceipt{MessageID: id, SentAt: sentAt}, nil
}

// Verify connects, negotiates TLS and authenticates without sending anything.
func (s *SMTPTransport) Verify(ctx context.Context) error {
	if !s.IsConfigured() {
		return domain.ErrTransportNotConfigured
	}
	c, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Quit()
}

func (s *SMTPTransport) deliver(ctx context.Context, to string, raw []byte) error {
	c, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Mail(s.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp end of data: %w", err)
	}
	// The server owns the message once DATA is accepted; a failed QUIT must
	// not turn into a resend.
	_ = c.Quit()
	return nil
}

// open dials the server and leaves the session authenticated.
func (s *SMTPTransport) open(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	dialer := &net.Dialer{Timeout: s.cfg.Timeout}
	tlsConfig := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.Secure {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsConfig}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("smtp dial %s: %w", addr, err)
	}

	deadline := time.Now().Add(s.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp greeting: %w", err)
	}

	if !s.cfg.Secure {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(tlsConfig); err != nil {
				c.Close()
				return nil, fmt.Errorf("smtp STARTTLS: %w", err)
			}
		}
	}

	if ok, _ := c.Extension("AUTH"); ok && s.auth != nil {
		if err := c.Auth(s.auth); err != nil {
			c.Close()
			return nil, fmt.Errorf("smtp auth: %w", err)
		}
	}
	return c, nil
}

func isPermanent(err error) bool {
	var tpErr *textproto.Error
	return errors.As(err, &tpErr) && tpErr.Code >= 500
}
