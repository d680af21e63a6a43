// Package session holds the process-wide login state: the bearer token and
// the identity resolved from it. Only Login and Logout mutate it.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// State is the holder's lifecycle position.
type State int

const (
	// Anonymous means no token is held; protected screens must prompt login.
	Anonymous State = iota
	// Authenticating means a login call is in flight and no identity exists yet.
	Authenticating
	// Authenticated means a token is held and both identity lookups succeeded.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// User is the identity resolved for the current token.
type User struct {
	Username     string
	AccountCode  string
	EmployeeCode string
}

// Authenticator is the slice of the backend the holder needs. *api.Client
// satisfies it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	AccountCode(ctx context.Context) (string, error)
	EmployeeCode(ctx context.Context) (string, error)
}

// Holder is the single source of truth for "who is logged in". Readers may
// share one instance freely; writes happen only through Login, Logout and
// Init.
type Holder struct {
	mu    sync.RWMutex
	store TokenStore
	api   Authenticator

	state State
	token string
	user  *User
}

// NewHolder creates a Holder backed by the given token store. Attach the
// backend with UseAPI before calling Init or Login.
func NewHolder(store TokenStore) *Holder {
	return &Holder{store: store, state: Anonymous}
}

// UseAPI attaches the backend client. Kept separate from NewHolder because
// the client's token provider is the holder itself.
func (h *Holder) UseAPI(a Authenticator) {
	h.mu.Lock()
	h.api = a
	h.mu.Unlock()
}

// Token returns the current bearer token, or "" when anonymous. This is the
// client's TokenProvider.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// State returns the current lifecycle state.
func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Current returns a copy of the resolved identity, or nil when anonymous.
func (h *Holder) Current() *User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	u := *h.user
	return &u
}

// Init rehydrates a persisted token and re-resolves its identity against the
// server. A token that no longer resolves is cleared from the store; the
// holder then reports Anonymous without error, since a missing session is a
// normal state, not a failure.
func (h *Holder) Init(ctx context.Context) error {
	tok, err := h.store.Load()
	if err != nil {
		return fmt.Errorf("load stored token: %w", err)
	}
	if tok == "" {
		return nil
	}

	h.mu.Lock()
	h.token = tok
	h.mu.Unlock()

	if err := h.resolveIdentity(ctx); err != nil {
		h.clear()
		return nil
	}
	return nil
}

// Login obtains a token and resolves its identity. Any identity-lookup
// failure after the token was issued clears everything; the holder never
// keeps a token without a resolved identity, and never retries on its own.
func (h *Holder) Login(ctx context.Context, username, password string) error {
	h.mu.Lock()
	if h.api == nil {
		h.mu.Unlock()
		return fmt.Errorf("session: no backend attached")
	}
	a := h.api
	h.state = Authenticating
	h.mu.Unlock()

	tok, err := a.Login(ctx, username, password)
	if err != nil {
		h.clear()
		return fmt.Errorf("login: %w", err)
	}

	h.mu.Lock()
	h.token = tok
	h.mu.Unlock()

	if err := h.resolveIdentity(ctx); err != nil {
		h.clear()
		return fmt.Errorf("resolve identity: %w", err)
	}

	if err := h.store.Save(tok); err != nil {
		// Session is live either way; persistence only affects the next run.
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Logout tells the server goodbye (best effort) and always clears local
// state.
func (h *Holder) Logout(ctx context.Context) {
	h.mu.RLock()
	a := h.api
	h.mu.RUnlock()
	if a != nil {
		_ = a.Logout(ctx)
	}
	h.clear()
}

// resolveIdentity performs the two follow-up lookups that turn a bare token
// into a User. The username comes from the token payload itself; only the
// server-verified lookups gate authentication.
func (h *Holder) resolveIdentity(ctx context.Context) error {
	h.mu.RLock()
	a := h.api
	tok := h.token
	h.mu.RUnlock()
	if a == nil {
		return fmt.Errorf("session: no backend attached")
	}

	accountCode, err := a.AccountCode(ctx)
	if err != nil {
		return err
	}
	employeeCode, err := a.EmployeeCode(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.user = &User{
		Username:     usernameClaim(tok),
		AccountCode:  accountCode,
		EmployeeCode: employeeCode,
	}
	h.state = Authenticated
	h.mu.Unlock()
	return nil
}

func (h *Holder) clear() {
	h.mu.Lock()
	h.token = ""
	h.user = nil
	h.state = Anonymous
	h.mu.Unlock()
	_ = h.store.Clear()
}

// usernameClaim decodes the username claim without verifying the signature.
// The value is display-only; the server does the real validation on every
// request.
func usernameClaim(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if name, ok := claims["username"].(string); ok {
		return name
	}
	return ""
}
