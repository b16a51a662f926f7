package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        entity.User `json:"user"`
}

// Login troca credenciais por uma sessão. Credenciais rejeitadas viram
// ErrInvalidCredentials; falhas de transporte sobem como estão.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *types.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			return nil, types.ErrInvalidCredentials
		}
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, types.ErrInvalidCredentials
	}

	user := resp.User
	return &entity.Session{Token: resp.AccessToken, User: &user}, nil
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type forgotPasswordResponse struct {
	Message string `json:"message"`
}

// ForgotPassword dispara o email de recuperação e retorna a mensagem da API.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp forgotPasswordResponse
	err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, forgotPasswordRequest{Email: email}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
