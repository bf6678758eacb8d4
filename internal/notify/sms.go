package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pankajyadav-dev/ocean/internal/config"
)

// SMSSender delivers alerts through a WhatsApp-style HTTP messaging
// provider. Requires both provider credentials and a recipient phone
// number; absent either, Send returns false without attempting I/O.
type SMSSender struct {
	cfg    config.SMSConfig
	http   *http.Client
	logger *slog.Logger
}

func NewSMSSender(cfg config.SMSConfig, timeout time.Duration, logger *slog.Logger) *SMSSender {
	return &SMSSender{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (s *SMSSender) Configured() bool {
	return s.cfg.Configured()
}

type smsRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Body string `json:"body"`
}

func (s *SMSSender) Send(ctx context.Context, to string, msg Message) bool {
	if !s.Configured() || to == "" {
		return false
	}

	payload, err := json.Marshal(smsRequest{From: s.cfg.From, To: to, Body: msg.Body})
	if err != nil {
		s.logger.Error("marshal sms payload failed", slog.Any("error", err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		s.logger.Error("create sms request failed", slog.Any("error", err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.http.Do(req)
	if err != nil {
		s.logger.Warn("sms send failed",
			slog.String("to", to),
			slog.Any("error", err),
		)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("sms provider rejected message",
			slog.String("to", to),
			slog.String("status", resp.Status),
		)
		return false
	}

	return true
}
