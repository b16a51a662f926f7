package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mersoabreu/fincontrol/internal/adapter/driven/session"
	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

type fakeAuthRepo struct {
	email    string
	password string
	netErr   error
}

func (f *fakeAuthRepo) Login(_ context.Context, email, password string) (*entity.Session, error) {
	if f.netErr != nil {
		return nil, f.netErr
	}
	if email != f.email || password != f.password {
		return nil, types.ErrInvalidCredentials
	}
	return &entity.Session{
		Token: "tok-valid",
		User:  &entity.User{ID: 7, Email: email, Name: "Merso Abreu"},
	}, nil
}

func (f *fakeAuthRepo) ForgotPassword(_ context.Context, email string) (string, error) {
	if f.netErr != nil {
		return "", f.netErr
	}
	return "recovery email sent to " + email, nil
}

func newAuthUseCase(t *testing.T, repo *fakeAuthRepo) *AuthUseCase {
	t.Helper()
	return NewAuthUseCase(repo, session.NewStore(t.TempDir()))
}

func TestLoginSuccessPersistsTokenAndUser(t *testing.T) {
	uc := newAuthUseCase(t, &fakeAuthRepo{email: "mersoabreu@gmail.com", password: "123456"})

	ok, err := uc.Login(context.Background(), "mersoabreu@gmail.com", "123456")
	if err != nil || !ok {
		t.Fatalf("Login = (%v, %v), expected success", ok, err)
	}

	if !uc.IsAuthenticated() {
		t.Fatal("use case should be authenticated after login")
	}
	user := uc.CurrentUser()
	if user == nil || user.Email != "mersoabreu@gmail.com" {
		t.Fatalf("current user = %+v", user)
	}
	if uc.Token() == "" {
		t.Fatal("token should be persisted")
	}
}

func TestLoginWrongPasswordLeavesNoPartialState(t *testing.T) {
	uc := newAuthUseCase(t, &fakeAuthRepo{email: "mersoabreu@gmail.com", password: "123456"})

	ok, err := uc.Login(context.Background(), "mersoabreu@gmail.com", "wrong")
	if err != nil {
		t.Fatalf("bad credentials should not be an error: %v", err)
	}
	if ok {
		t.Fatal("login with wrong password should fail")
	}

	if uc.IsAuthenticated() || uc.Token() != "" || uc.CurrentUser() != nil {
		t.Fatal("no partial state may be written on failed login")
	}
}

func TestLoginNetworkErrorSurfaces(t *testing.T) {
	netErr := errors.New("connection refused")
	uc := newAuthUseCase(t, &fakeAuthRepo{netErr: netErr})

	ok, err := uc.Login(context.Background(), "mersoabreu@gmail.com", "123456")
	if ok || !errors.Is(err, netErr) {
		t.Fatalf("Login = (%v, %v), expected transport error", ok, err)
	}
	if uc.IsAuthenticated() {
		t.Fatal("transport failure must not authenticate")
	}
}

func TestLoginLogoutIsIdempotentRoundTrip(t *testing.T) {
	uc := newAuthUseCase(t, &fakeAuthRepo{email: "mersoabreu@gmail.com", password: "123456"})

	if ok, _ := uc.Login(context.Background(), "mersoabreu@gmail.com", "123456"); !ok {
		t.Fatal("login should succeed")
	}
	if err := uc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if uc.IsAuthenticated() || uc.Token() != "" || uc.CurrentUser() != nil {
		t.Fatal("state after login+logout must equal the initial state")
	}
}
