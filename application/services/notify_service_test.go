package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	apperrors "nextsite-backend/pkg/errors"
)

type captureRelay struct {
	last ports.NotifyMessage
	err  error
}

func (r *captureRelay) Send(ctx context.Context, msg ports.NotifyMessage) error {
	r.last = msg
	return r.err
}

func TestNotifyService_RelaysMessage(t *testing.T) {
	relay := &captureRelay{}
	svc := NewNotifyService(relay, zap.NewNop())

	err := svc.Send(context.Background(), ports.NotifyMessage{
		Company: "  Clínica Dental Sonrisa Norte  ",
		Layout:  "booking_trust_v1",
		Preview: "https://preview.example.com/abc",
	})

	require.NoError(t, err)
	assert.Equal(t, "Clínica Dental Sonrisa Norte", relay.last.Company)
	assert.Equal(t, "booking_trust_v1", relay.last.Layout)
	assert.Equal(t, "https://preview.example.com/abc", relay.last.Preview)
}

func TestNotifyService_RequiresCompany(t *testing.T) {
	svc := NewNotifyService(&captureRelay{}, zap.NewNop())

	err := svc.Send(context.Background(), ports.NotifyMessage{Company: "   "})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNotifyService_RejectsNonHTTPPreview(t *testing.T) {
	svc := NewNotifyService(&captureRelay{}, zap.NewNop())

	for _, preview := range []string{"ftp://host/x", "javascript:alert(1)", "not a url", "https://"} {
		err := svc.Send(context.Background(), ports.NotifyMessage{Company: "Acme", Preview: preview})
		require.Error(t, err, "preview %q should be rejected", preview)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestNotifyService_ClampsOversizedFields(t *testing.T) {
	relay := &captureRelay{}
	svc := NewNotifyService(relay, zap.NewNop())

	err := svc.Send(context.Background(), ports.NotifyMessage{
		Company: strings.Repeat("a", 500),
		Layout:  strings.Repeat("b", 500),
		Preview: "https://example.com/" + strings.Repeat("c", 600),
	})

	require.NoError(t, err)
	assert.Len(t, relay.last.Company, 120)
	assert.Len(t, relay.last.Layout, 120)
	assert.Len(t, relay.last.Preview, 500)
}

func TestNotifyService_ClampKeepsValidUTF8(t *testing.T) {
	relay := &captureRelay{}
	svc := NewNotifyService(relay, zap.NewNop())

	// 119 ASCII bytes plus a two-byte rune straddling the 120-byte limit.
	err := svc.Send(context.Background(), ports.NotifyMessage{
		Company: strings.Repeat("a", 119) + "ñ",
	})

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 119), relay.last.Company)
	assert.True(t, utf8.ValidString(relay.last.Company))
}

func TestNotifyService_PropagatesRelayFailure(t *testing.T) {
	relay := &captureRelay{err: apperrors.NewUnavailableError("notify relay")}
	svc := NewNotifyService(relay, zap.NewNop())

	err := svc.Send(context.Background(), ports.NotifyMessage{Company: "Acme"})

	assert.Error(t, err)
}
