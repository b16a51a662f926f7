package cli

import (
	"errors"
	"testing"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

type fakeSessions struct {
	authenticated bool
}

func (f *fakeSessions) Save(session entity.Session) error { f.authenticated = true; return nil }
func (f *fakeSessions) Clear() error                      { f.authenticated = false; return nil }
func (f *fakeSessions) Restore() entity.Session           { return entity.Session{} }
func (f *fakeSessions) IsAuthenticated() bool             { return f.authenticated }
func (f *fakeSessions) Token() string                     { return "" }
func (f *fakeSessions) CurrentUser() *entity.User         { return nil }
func (f *fakeSessions) Subscribe(func(bool))              {}
func (f *fakeSessions) Available() bool                   { return true }

func TestRequireAuthDeniesGuests(t *testing.T) {
	app := &CLIApp{sessions: &fakeSessions{authenticated: false}}

	if err := app.requireAuth(nil, nil); !errors.Is(err, types.ErrNotAuthenticated) {
		t.Fatalf("requireAuth without session: got %v, want ErrNotAuthenticated", err)
	}
	if err := app.requireGuest(nil, nil); err != nil {
		t.Fatalf("requireGuest without session: got %v, want nil", err)
	}
}

func TestRequireGuestDeniesAuthenticated(t *testing.T) {
	app := &CLIApp{sessions: &fakeSessions{authenticated: true}}

	if err := app.requireGuest(nil, nil); !errors.Is(err, types.ErrAlreadyAuthenticated) {
		t.Fatalf("requireGuest with session: got %v, want ErrAlreadyAuthenticated", err)
	}
	if err := app.requireAuth(nil, nil); err != nil {
		t.Fatalf("requireAuth with session: got %v, want nil", err)
	}
}

func TestParseIDRejectsGarbage(t *testing.T) {
	cases := []string{"", "abc", "0", "-3", "1.5"}
	for _, c := range cases {
		if _, err := parseID(c); err == nil {
			t.Errorf("parseID(%q): expected error", c)
		}
	}

	id, err := parseID("42")
	if err != nil || id != 42 {
		t.Fatalf("parseID(42): got %d, %v", id, err)
	}
}
