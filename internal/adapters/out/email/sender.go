// Package email delivers notifications over SMTP.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Login    string
	Password string
	From     string
	FromName string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends plain text emails through one SMTP server. A connection is
// opened per message.
type SMTPSender struct {
	cfg    Config
	dialer dialer
}

func NewSMTPSender(cfg Config) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &SMTPSender{cfg: cfg, dialer: d}
}

// SendSuccess sends message to email. gomail cannot be cancelled mid-send, so
// ctx is only checked before dialing.
func (s *SMTPSender) SendSuccess(ctx context.Context, email, message, subject string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)
	msg.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// LogSender writes emails to the log instead of sending them. It is used when
// no SMTP host is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "email")}
}

func (s *LogSender) SendSuccess(ctx context.Context, email, message, subject string) error {
	s.logger.InfoContext(ctx, "email not sent, SMTP is not configured",
		"to", email,
		"subject", subject,
		"length", len(message),
	)
	return nil
}
