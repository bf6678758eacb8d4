package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/pankajyadav-dev/ocean/internal/config"
)

// EmailSender delivers alerts over SMTP. When the transport is unconfigured
// every Send returns false immediately and silently; the dispatcher emits
// the single remediation log line per dispatch.
type EmailSender struct {
	cfg    config.SMTPConfig
	auth   smtp.Auth
	logger *slog.Logger
}

func NewEmailSender(cfg config.SMTPConfig, logger *slog.Logger) *EmailSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &EmailSender{cfg: cfg, auth: auth, logger: logger}
}

func (s *EmailSender) Configured() bool {
	return s.cfg.Configured()
}

func (s *EmailSender) Send(ctx context.Context, to string, msg Message) bool {
	if !s.Configured() || to == "" {
		return false
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromAddress)
	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		from, to, msg.Subject, msg.Body)

	// smtp.SendMail has no context support; bound it ourselves.
	done := make(chan error, 1)
	go func() {
		addr := s.cfg.Host + ":" + s.cfg.Port
		done <- smtp.SendMail(addr, s.auth, s.cfg.FromAddress, []string{to}, []byte(raw))
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Warn("email send failed",
				slog.String("to", to),
				slog.String("smtp_host", s.cfg.Host),
				slog.Any("error", err),
			)
			return false
		}
		return true
	case <-ctx.Done():
		s.logger.Warn("email send timed out",
			slog.String("to", to),
			slog.String("smtp_host", s.cfg.Host),
			slog.Any("error", ctx.Err()),
		)
		return false
	}
}
