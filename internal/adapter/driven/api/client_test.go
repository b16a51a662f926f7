package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mersoabreu/fincontrol/internal/adapter/driven/session"
	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/domain/repository"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

func newTestStore(t *testing.T, token string) repository.SessionRepository {
	t.Helper()
	store := session.NewStore(t.TempDir())
	if token != "" {
		err := store.Save(entity.Session{Token: token, User: &entity.User{ID: 1, Email: "mersoabreu@gmail.com", Name: "Merso"}})
		if err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}
	return store
}

func TestBearerHeaderOnAuthenticatedRoutes(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]entity.Transaction{})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, "tok-abc"))
	if _, err := client.List(context.Background(), entity.TransactionFilter{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("Authorization = %q, expected bearer token", gotAuth)
	}
}

func TestNoBearerHeaderOnPublicRoutes(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(loginResponse{AccessToken: "fresh", User: entity.User{ID: 1}})
	}))
	defer server.Close()

	// Mesmo com um token persistido, rotas públicas não são decoradas.
	client := NewClient(server.URL, newTestStore(t, "stale-token"))
	if _, err := client.Login(context.Background(), "mersoabreu@gmail.com", "123456"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if gotAuth != "" {
		t.Fatalf("public route carried Authorization = %q", gotAuth)
	}
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer server.Close()

	store := newTestStore(t, "expired")
	redirects := 0
	client := NewClient(server.URL, store, WithOnUnauthorized(func() { redirects++ }))

	_, err := client.List(context.Background(), entity.TransactionFilter{})
	if err == nil {
		t.Fatal("expected error from 401")
	}

	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected APIError 401, got %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatal("session should be cleared after 401")
	}
	if redirects != 1 {
		t.Fatalf("onUnauthorized called %d times, expected exactly 1", redirects)
	}
}

func TestUnauthorizedOnPublicRouteKeepsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := newTestStore(t, "still-valid")
	client := NewClient(server.URL, store)

	_, err := client.Login(context.Background(), "mersoabreu@gmail.com", "wrong")
	if !errors.Is(err, types.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !store.IsAuthenticated() {
		t.Fatal("401 on public route must not clear the session")
	}
}

func TestListOmitsEmptyFilters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]entity.Transaction{})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, "tok"))

	if _, err := client.List(context.Background(), entity.TransactionFilter{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("empty filter should omit all params, got %q", gotQuery)
	}

	filter := entity.TransactionFilter{Type: entity.TypeExpense, Month: 12, Year: 2025}
	if _, err := client.List(context.Background(), filter); err != nil {
		t.Fatalf("List with filter: %v", err)
	}
	if gotQuery != "month=12&type=expense&year=2025" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}

func TestMarkAsPaidHitsCorrectPath(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		paid := "2026-01-10"
		json.NewEncoder(w).Encode(entity.Transaction{ID: 42, Status: entity.StatusPaid, PaidDate: &paid})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, "tok"))
	transaction, err := client.MarkAsPaid(context.Background(), 42)
	if err != nil {
		t.Fatalf("MarkAsPaid: %v", err)
	}

	if gotMethod != http.MethodPatch || gotPath != "/transactions/42/mark-as-paid" {
		t.Fatalf("got %s %s", gotMethod, gotPath)
	}
	if !transaction.IsPaid() || transaction.PaidDate == nil {
		t.Fatalf("expected paid transaction with paidDate, got %+v", transaction)
	}
}

func TestHTTPErrorsAreNotRetried(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, "tok"))
	if _, err := client.GetSummary(context.Background(), 1, 2026); err == nil {
		t.Fatal("expected error from 500")
	}
	if requests != 1 {
		t.Fatalf("server hit %d times, HTTP errors must not be retried", requests)
	}
}

func TestGetSummaryDecodesMinorUnits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("month") != "3" || r.URL.Query().Get("year") != "2026" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(entity.DashboardSummary{Receitas: 500000, Despesas: 152000, Saldo: 348000, Month: "3", Year: 2026})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, "tok"))
	summary, err := client.GetSummary(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.Saldo != 348000 {
		t.Fatalf("saldo = %d", summary.Saldo)
	}
}
