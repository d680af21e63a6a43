package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

type fakeBackend struct {
	token        string
	loginErr     error
	accountErr   error
	employeeErr  error
	logoutErr    error
	loginCalls   int
	accountCalls int
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (string, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeBackend) Logout(_ context.Context) error { return f.logoutErr }

func (f *fakeBackend) AccountCode(_ context.Context) (string, error) {
	f.accountCalls++
	if f.accountErr != nil {
		return "", f.accountErr
	}
	return "TK01", nil
}

func (f *fakeBackend) EmployeeCode(_ context.Context) (string, error) {
	if f.employeeErr != nil {
		return "", f.employeeErr
	}
	return "NV01", nil
}

func signedToken(t *testing.T, username string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": username})
	s, err := tok.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newTestHolder(api Authenticator, store TokenStore) *Holder {
	h := NewHolder(store)
	h.UseAPI(api)
	return h
}

func TestHolder_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success resolves identity and persists token", func(t *testing.T) {
		tok := signedToken(t, "admin")
		store := &MemoryStore{}
		h := newTestHolder(&fakeBackend{token: tok}, store)

		if err := h.Login(ctx, "admin", "secret"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if h.State() != Authenticated {
			t.Errorf("state = %v, want Authenticated", h.State())
		}
		u := h.Current()
		if u == nil || u.Username != "admin" || u.AccountCode != "TK01" || u.EmployeeCode != "NV01" {
			t.Errorf("unexpected identity: %+v", u)
		}
		if store.Token != tok {
			t.Errorf("token not persisted")
		}
	})

	t.Run("rejected credentials leave the holder anonymous", func(t *testing.T) {
		store := &MemoryStore{}
		h := newTestHolder(&fakeBackend{loginErr: errors.New("401")}, store)

		if err := h.Login(ctx, "admin", "wrong"); err == nil {
			t.Fatal("expected error")
		}
		if h.State() != Anonymous || h.Token() != "" || h.Current() != nil {
			t.Errorf("holder not cleared after failed login")
		}
	})

	t.Run("identity failure after token clears everything without retry", func(t *testing.T) {
		store := &MemoryStore{Token: "stale"}
		api := &fakeBackend{token: signedToken(t, "admin"), accountErr: errors.New("expired")}
		h := newTestHolder(api, store)

		if err := h.Login(ctx, "admin", "secret"); err == nil {
			t.Fatal("expected error")
		}
		if h.State() != Anonymous || h.Token() != "" {
			t.Error("token kept without resolved identity")
		}
		if store.Token != "" {
			t.Error("stored token not cleared")
		}
		if api.accountCalls != 1 {
			t.Errorf("identity lookup retried %d times; must never auto-retry", api.accountCalls)
		}
	})
}

func TestHolder_Init(t *testing.T) {
	ctx := context.Background()

	t.Run("no stored token means anonymous", func(t *testing.T) {
		h := newTestHolder(&fakeBackend{}, &MemoryStore{})
		if err := h.Init(ctx); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if h.State() != Anonymous {
			t.Errorf("state = %v, want Anonymous", h.State())
		}
	})

	t.Run("stored token rehydrates a session", func(t *testing.T) {
		tok := signedToken(t, "nvbanhang")
		h := newTestHolder(&fakeBackend{}, &MemoryStore{Token: tok})

		if err := h.Init(ctx); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if h.State() != Authenticated {
			t.Fatalf("state = %v, want Authenticated", h.State())
		}
		if u := h.Current(); u == nil || u.Username != "nvbanhang" {
			t.Errorf("unexpected identity: %+v", u)
		}
	})

	t.Run("stored token that no longer resolves is removed", func(t *testing.T) {
		store := &MemoryStore{Token: signedToken(t, "ghost")}
		h := newTestHolder(&fakeBackend{employeeErr: errors.New("401")}, store)

		if err := h.Init(ctx); err != nil {
			t.Fatalf("Init should not fail on an expired session: %v", err)
		}
		if h.State() != Anonymous || store.Token != "" {
			t.Error("expired token survived Init")
		}
	})
}

func TestHolder_Logout(t *testing.T) {
	tok := signedToken(t, "admin")
	store := &MemoryStore{}
	h := newTestHolder(&fakeBackend{token: tok, logoutErr: errors.New("503")}, store)

	if err := h.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	h.Logout(context.Background())

	// A failing server-side logout must still clear local state.
	if h.State() != Anonymous || h.Token() != "" || h.Current() != nil {
		t.Error("local state survived logout")
	}
	if store.Token != "" {
		t.Error("stored token survived logout")
	}
}

func TestUsernameClaim(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		if got := usernameClaim(signedToken(t, "admin")); got != "admin" {
			t.Errorf("usernameClaim = %q, want admin", got)
		}
	})

	t.Run("garbage token yields empty name, not an error", func(t *testing.T) {
		if got := usernameClaim("not-a-jwt"); got != "" {
			t.Errorf("usernameClaim = %q, want empty", got)
		}
	})
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	if tok, err := store.Load(); err != nil || tok != "" {
		t.Fatalf("Load on missing file = (%q, %v), want empty", tok, err)
	}

	if err := store.Save("abc123"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if tok, err := store.Load(); err != nil || tok != "abc123" {
		t.Fatalf("Load = (%q, %v), want abc123", tok, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatal("token survived Clear")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on absent token should be nil, got %v", err)
	}
}
