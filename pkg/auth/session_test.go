package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndVerify(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, m.Verify(token))
}

func TestSessionManager_RejectsExpiredToken(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(time.Now().Add(-2 * time.Hour))
	require.NoError(t, err)

	assert.Error(t, m.Verify(token))
}

func TestSessionManager_RejectsForeignSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Hour)
	verifier := NewSessionManager("secret-b", time.Hour)

	token, err := issuer.Issue(time.Now())
	require.NoError(t, err)

	assert.Error(t, verifier.Verify(token))
}

func TestSessionManager_RejectsGarbage(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	assert.Error(t, m.Verify(""))
	assert.Error(t, m.Verify("not.a.token"))
}

func TestSessionManager_Cookie(t *testing.T) {
	m := NewSessionManager("test-secret", 2*time.Hour)

	cookie := m.Cookie("tok", true)

	assert.Equal(t, SessionCookie, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((2 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestConstantTimeEquals(t *testing.T) {
	assert.True(t, ConstantTimeEquals("hunter2", "hunter2"))
	assert.False(t, ConstantTimeEquals("hunter2", "hunter3"))
	assert.False(t, ConstantTimeEquals("hunter2", "hunter22"))
	assert.False(t, ConstantTimeEquals("", "x"))
	assert.True(t, ConstantTimeEquals("", ""))
}
