package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{ID: 1, Email: "mersoabreu@gmail.com", Name: "Merso Abreu"}
}

func TestSaveAndRestore(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if store.IsAuthenticated() {
		t.Fatal("new store should be unauthenticated")
	}

	err := store.Save(entity.Session{Token: "tok-123", User: testUser()})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Um segundo store sobre o mesmo diretório simula um novo processo.
	other := NewStore(dir)
	restored := other.Restore()
	if !restored.Authenticated() {
		t.Fatal("restored session should be authenticated")
	}
	if restored.Token != "tok-123" {
		t.Fatalf("restored token = %q", restored.Token)
	}
	if restored.User == nil || restored.User.Email != "mersoabreu@gmail.com" {
		t.Fatalf("restored user = %+v", restored.User)
	}
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Save(entity.Session{Token: "tok", User: testUser()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if store.IsAuthenticated() {
		t.Fatal("store should be unauthenticated after Clear")
	}
	if store.Token() != "" {
		t.Fatal("token should be empty after Clear")
	}
	if store.CurrentUser() != nil {
		t.Fatal("user should be absent after Clear")
	}
	if _, err := os.Stat(filepath.Join(dir, sessionFile)); !os.IsNotExist(err) {
		t.Fatal("session file should be removed after Clear")
	}
}

func TestUserWithoutTokenRejected(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Save(entity.Session{User: testUser()}); err == nil {
		t.Fatal("Save should reject user without token")
	}
	if store.IsAuthenticated() {
		t.Fatal("nothing should have been written")
	}
}

func TestIsAuthenticatedReadsStorage(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Save(entity.Session{Token: "tok", User: testUser()}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Outro processo removeu o arquivo: a checagem autoritativa deve ver isso
	// mesmo com a cópia em memória ainda autenticada.
	if err := os.Remove(filepath.Join(dir, sessionFile)); err != nil {
		t.Fatalf("remove session file: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatal("IsAuthenticated should consult durable storage, not memory")
	}
}

func TestCorruptFileMeansUnauthenticated(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, sessionFile), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := NewStore(dir)
	if restored := store.Restore(); restored.Authenticated() {
		t.Fatal("corrupt session file should restore as unauthenticated")
	}
}

func TestUnavailableStorageIsNoOp(t *testing.T) {
	store := NewStore("")

	if store.Available() {
		t.Fatal("empty dir should mean storage unavailable")
	}
	if err := store.Save(entity.Session{Token: "tok", User: testUser()}); err != nil {
		t.Fatalf("Save without storage should not fail: %v", err)
	}
	// A cópia em memória ainda funciona dentro do processo.
	if !store.IsAuthenticated() {
		t.Fatal("in-memory session should survive within the process")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear without storage should not fail: %v", err)
	}
}

func TestSubscribersNotified(t *testing.T) {
	store := NewStore(t.TempDir())

	var states []bool
	store.Subscribe(func(authenticated bool) {
		states = append(states, authenticated)
	})

	if err := store.Save(entity.Session{Token: "tok", User: testUser()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if len(states) != 2 || states[0] != true || states[1] != false {
		t.Fatalf("unexpected notifications: %v", states)
	}
}
