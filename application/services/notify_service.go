package services

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	apperrors "nextsite-backend/pkg/errors"
)

// Field limits for outbound notifications. Oversized fields are truncated
// rather than rejected: a long preview URL query string should not lose the
// notification.
const (
	maxCompanyLength = 120
	maxLayoutLength  = 120
	maxPreviewLength = 500
)

// NotifyService validates and forwards portal notifications to the external
// form relay.
type NotifyService struct {
	relay  ports.NotifyRelay
	logger *zap.Logger
}

// NewNotifyService creates a new notify service
func NewNotifyService(relay ports.NotifyRelay, logger *zap.Logger) *NotifyService {
	return &NotifyService{relay: relay, logger: logger}
}

// Send clamps the message fields, validates the preview URL and relays the
// notification.
func (s *NotifyService) Send(ctx context.Context, msg ports.NotifyMessage) error {
	msg.Company = clamp(strings.TrimSpace(msg.Company), maxCompanyLength)
	msg.Layout = clamp(strings.TrimSpace(msg.Layout), maxLayoutLength)
	msg.Preview = clamp(strings.TrimSpace(msg.Preview), maxPreviewLength)

	if msg.Company == "" {
		return apperrors.NewValidationError("company is required")
	}
	if msg.Preview != "" && !isHTTPURL(msg.Preview) {
		return apperrors.NewValidationError("preview must be an http(s) URL")
	}

	if err := s.relay.Send(ctx, msg); err != nil {
		s.logger.Warn("notification relay failed",
			zap.String("company", msg.Company),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("notification relayed", zap.String("company", msg.Company))
	return nil
}

// clamp truncates s to at most max bytes without splitting a rune.
func clamp(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
