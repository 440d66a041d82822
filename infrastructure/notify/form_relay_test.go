package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	apperrors "nextsite-backend/pkg/errors"
)

func TestFormRelay_SendPostsForm(t *testing.T) {
	var gotName, gotMessage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotName = r.PostFormValue("name")
		gotMessage = r.PostFormValue("message")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay := NewFormRelay(func() string { return srv.URL }, zap.NewNop())
	err := relay.Send(context.Background(), ports.NotifyMessage{
		Company: "Acme",
		Layout:  "booking_trust_v1",
		Preview: "https://preview.example.com/acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", gotName)
	assert.Contains(t, gotMessage, "Nueva web generada: Acme")
	assert.Contains(t, gotMessage, "Layout: booking_trust_v1")
	assert.Contains(t, gotMessage, "Preview: https://preview.example.com/acme")
}

func TestFormRelay_EmptyEndpointIsUnavailable(t *testing.T) {
	relay := NewFormRelay(func() string { return "" }, zap.NewNop())

	err := relay.Send(context.Background(), ports.NotifyMessage{Company: "Acme"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeUnavailable, appErr.Type)
}

func TestFormRelay_EndpointFollowsConfigReload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	endpoint := ""
	relay := NewFormRelay(func() string { return endpoint }, zap.NewNop())

	err := relay.Send(context.Background(), ports.NotifyMessage{Company: "Acme"})
	require.Error(t, err)

	endpoint = srv.URL
	assert.NoError(t, relay.Send(context.Background(), ports.NotifyMessage{Company: "Acme"}))
}

func TestFormRelay_UpstreamErrorIsExternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	relay := NewFormRelay(func() string { return srv.URL }, zap.NewNop())
	err := relay.Send(context.Background(), ports.NotifyMessage{Company: "Acme"})

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
}
