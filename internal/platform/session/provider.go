// Package session provides the single identity-session provider.
// Sign-up, sign-in and token issuance live in the external identity
// collaborator; this provider only decodes its access tokens into a
// shared snapshot and fans state changes out to subscribers, so no
// consumer mutates session state directly.
package session

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Snapshot is a read-only view of the current session.
type Snapshot struct {
	UserID   string
	Email    string
	SignedIn bool
}

// Provider owns the session state. All reads go through Current, all
// writes through Apply/Clear.
type Provider struct {
	mu      sync.RWMutex
	secret  []byte
	current Snapshot
	subs    map[uuid.UUID]func(Snapshot)
}

// NewProvider creates a Provider. When secret is non-empty, applied
// tokens must carry a valid HS256 signature under it; otherwise tokens
// are decoded without verification (the identity provider already
// authenticated the user, this side only needs the claims).
func NewProvider(secret string) *Provider {
	return &Provider{
		secret: []byte(secret),
		subs:   make(map[uuid.UUID]func(Snapshot)),
	}
}

// Current returns the current session snapshot.
func (p *Provider) Current() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Subscribe registers fn to be called on every session change and
// returns a token for Unsubscribe. fn is not called for the state at
// subscription time; read Current for that.
func (p *Provider) Subscribe(fn func(Snapshot)) uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := uuid.New()
	p.subs[id] = fn
	return id
}

// Unsubscribe removes a subscription. Unknown tokens are ignored.
func (p *Provider) Unsubscribe(id uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.subs, id)
}

// Apply decodes an access token from the identity provider, replaces
// the current snapshot and notifies subscribers.
func (p *Provider) Apply(accessToken string) (Snapshot, error) {
	claims := jwt.MapClaims{}
	if len(p.secret) > 0 {
		if _, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
			return p.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"})); err != nil {
			return Snapshot{}, err
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
			return Snapshot{}, err
		}
	}

	snap := Snapshot{SignedIn: true}
	if sub, ok := claims["sub"].(string); ok {
		snap.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		snap.Email = email
	}

	p.set(snap)
	return snap, nil
}

// Clear resets the provider to the signed-out state and notifies
// subscribers.
func (p *Provider) Clear() {
	p.set(Snapshot{})
}

func (p *Provider) set(snap Snapshot) {
	p.mu.Lock()
	p.current = snap
	fns := make([]func(Snapshot), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	// Notify outside the lock so a subscriber may re-enter the
	// provider (e.g. Unsubscribe itself).
	for _, fn := range fns {
		fn(snap)
	}
}
