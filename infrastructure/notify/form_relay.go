package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	apperrors "nextsite-backend/pkg/errors"
)

// FormRelay posts notifications to an external form endpoint as a
// urlencoded form. A circuit breaker guards the call: when the endpoint
// misbehaves, subsequent notifications fail fast instead of holding request
// handlers on a dead upstream.
type FormRelay struct {
	endpoint func() string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	logger   *zap.Logger
}

// NewFormRelay creates a relay for the configured endpoint. The endpoint is
// read per send so configuration reloads take effect without a restart; an
// empty endpoint rejects the send with an unavailable error.
func NewFormRelay(endpoint func() string, logger *zap.Logger) *FormRelay {
	settings := gobreaker.Settings{
		Name:        "notify-relay",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("notify relay breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &FormRelay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		breaker:  gobreaker.NewCircuitBreaker(settings),
		logger:   logger,
	}
}

// Send implements ports.NotifyRelay.
func (r *FormRelay) Send(ctx context.Context, msg ports.NotifyMessage) error {
	endpoint := r.endpoint()
	if endpoint == "" {
		return apperrors.NewUnavailableError("notify relay")
	}

	form := url.Values{}
	form.Set("name", msg.Company)
	form.Set("message", formatMessage(msg))

	_, err := r.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")

		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("relay endpoint returned %d", resp.StatusCode)
		}
		return nil, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return apperrors.NewUnavailableError("notify relay")
		}
		return apperrors.NewExternalError("notify relay", err)
	}

	return nil
}

func formatMessage(msg ports.NotifyMessage) string {
	var b strings.Builder
	b.WriteString("Nueva web generada: " + msg.Company)
	if msg.Layout != "" {
		b.WriteString("\nLayout: " + msg.Layout)
	}
	if msg.Preview != "" {
		b.WriteString("\nPreview: " + msg.Preview)
	}
	return b.String()
}
