package types

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials: email ou senha rejeitados pelo endpoint de login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionExpired: a API respondeu 401 em uma rota autenticada; a sessão
	// local já foi limpa quando este erro chega ao chamador.
	ErrSessionExpired = errors.New("session expired, please login again")

	// ErrNotAuthenticated: comando protegido executado sem sessão.
	ErrNotAuthenticated = errors.New("not authenticated. Run 'fincontrol login' first")

	// ErrAlreadyAuthenticated: comando de convidado executado com sessão ativa.
	ErrAlreadyAuthenticated = errors.New("already logged in. Run 'fincontrol logout' to switch accounts")
)

// APIError carries a non-2xx response from the remote API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// IsUnauthorized reports whether err represents a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return errors.Is(err, ErrSessionExpired)
}
