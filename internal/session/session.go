// Package session keeps track of the signed in user and decides which
// views a navigation may reach.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// State is the state of the session.
type State int

const (
	// Unknown means that the user has not been loaded yet.
	Unknown State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Provider is the external identity provider.
type Provider interface {
	// User returns the signed in user. A nil user without an error
	// means that nobody is signed in.
	User(ctx context.Context) (*User, error)

	// SignInURL is the URL that starts the sign in. After signing in,
	// the provider redirects to redirectTo.
	SignInURL(redirectTo string) string

	SignOut(ctx context.Context) error
}

// Auth caches the user loaded from a Provider.
type Auth struct {
	provider Provider

	mu    sync.RWMutex
	user  *User
	state State
}

func NewAuth(p Provider) *Auth {
	return &Auth{provider: p}
}

func (a *Auth) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// User returns the signed in user, nil if there is none.
func (a *Auth) User() *User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

// Load asks the provider for the user and returns the resulting state.
//
// A failed lookup is logged and leaves the session unauthenticated.
func (a *Auth) Load(ctx context.Context) State {
	user, err := a.provider.User(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Loading the session user")
		user = nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = user
	a.state = Unauthenticated
	if user != nil {
		a.state = Authenticated
	}

	return a.state
}

// SignInURL returns the URL that signs the user in and returns to redirectTo.
func (a *Auth) SignInURL(redirectTo string) string {
	return a.provider.SignInURL(redirectTo)
}

// SignOut ends the session at the provider. The local session is
// unauthenticated afterwards, even if the provider failed.
func (a *Auth) SignOut(ctx context.Context) error {
	err := a.provider.SignOut(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.state = Unauthenticated

	return err
}
