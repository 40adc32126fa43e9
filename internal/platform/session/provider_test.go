package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestProvider_Current_InitiallySignedOut(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)

	snap := p.Current()
	assert.False(t, snap.SignedIn)
	assert.Empty(t, snap.UserID)
	assert.Empty(t, snap.Email)
}

func TestProvider_Apply_ValidToken(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-123",
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	snap, err := p.Apply(token)
	require.NoError(t, err)

	assert.True(t, snap.SignedIn)
	assert.Equal(t, "user-123", snap.UserID)
	assert.Equal(t, "owner@example.com", snap.Email)
	assert.Equal(t, snap, p.Current())
}

func TestProvider_Apply_RejectsBadSignature(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)
	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := p.Apply(token)
	require.Error(t, err)

	// A rejected token must not touch the snapshot.
	assert.False(t, p.Current().SignedIn)
}

func TestProvider_Apply_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)

	_, err := p.Apply("not.a.jwt")
	require.Error(t, err)
	assert.False(t, p.Current().SignedIn)
}

func TestProvider_Apply_UnverifiedWhenNoSecret(t *testing.T) {
	t.Parallel()

	p := NewProvider("")
	token := signToken(t, "whatever", jwt.MapClaims{
		"sub":   "user-456",
		"email": "viewer@example.com",
	})

	snap, err := p.Apply(token)
	require.NoError(t, err)

	assert.True(t, snap.SignedIn)
	assert.Equal(t, "user-456", snap.UserID)
	assert.Equal(t, "viewer@example.com", snap.Email)
}

func TestProvider_Apply_MissingClaims(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	snap, err := p.Apply(token)
	require.NoError(t, err)

	assert.True(t, snap.SignedIn)
	assert.Empty(t, snap.UserID)
	assert.Empty(t, snap.Email)
}

func TestProvider_Clear(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := p.Apply(token)
	require.NoError(t, err)

	p.Clear()

	snap := p.Current()
	assert.False(t, snap.SignedIn)
	assert.Empty(t, snap.UserID)
}

func TestProvider_Subscribe_NotifiesOnChange(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)

	var seen []Snapshot
	p.Subscribe(func(s Snapshot) {
		seen = append(seen, s)
	})

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := p.Apply(token)
	require.NoError(t, err)
	p.Clear()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].SignedIn)
	assert.Equal(t, "user-123", seen[0].UserID)
	assert.False(t, seen[1].SignedIn)
}

func TestProvider_Unsubscribe_StopsNotifications(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)

	calls := 0
	id := p.Subscribe(func(Snapshot) { calls++ })

	p.Clear()
	p.Unsubscribe(id)
	p.Clear()

	assert.Equal(t, 1, calls)
}

// Subscribers are notified outside the provider lock, so a callback
// may re-enter the provider without deadlocking.
func TestProvider_Subscriber_MayUnsubscribeItself(t *testing.T) {
	t.Parallel()

	p := NewProvider(testSecret)

	calls := 0
	var id uuid.UUID
	id = p.Subscribe(func(Snapshot) {
		calls++
		p.Unsubscribe(id)
	})

	p.Clear()
	p.Clear()

	assert.Equal(t, 1, calls)
}
