package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secreto-test", time.Hour, "vp_session")

	token, err := m.Issue("owner-1", "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	m := NewManager("secreto-test", time.Hour, "vp_session")

	_, err := m.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = m.Verify(context.Background(), "no-es-un-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	a := NewManager("secreto-a", time.Hour, "vp_session")
	b := NewManager("secreto-b", time.Hour, "vp_session")

	token, err := a.Issue("owner-1", "ana@example.com")
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_RejectsExpired(t *testing.T) {
	m := NewManager("secreto-test", time.Hour, "vp_session")

	token, err := m.Issue("owner-1", "ana@example.com")
	require.NoError(t, err)

	// El reloj avanza más allá del TTL
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestCookies(t *testing.T) {
	m := NewManager("secreto-test", time.Hour, "vp_session")

	c := m.Cookie("tok")
	assert.Equal(t, "vp_session", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 3600, c.MaxAge)

	e := m.ExpiredCookie()
	assert.Equal(t, "vp_session", e.Name)
	assert.Empty(t, e.Value)
	assert.Negative(t, e.MaxAge)
}
