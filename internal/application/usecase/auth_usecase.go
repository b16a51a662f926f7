package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/domain/repository"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

// AuthUseCase coordena login, logout e restauração da sessão.
type AuthUseCase struct {
	authRepo repository.AuthRepository
	sessions repository.SessionRepository
}

// NewAuthUseCase creates a new auth use case.
func NewAuthUseCase(authRepo repository.AuthRepository, sessions repository.SessionRepository) *AuthUseCase {
	return &AuthUseCase{authRepo: authRepo, sessions: sessions}
}

// Login autentica contra a API. Retorna false para credenciais inválidas e
// erro para falhas de transporte; nos dois casos nada é persistido. No
// sucesso, token e usuário são gravados juntos ANTES do retorno — a
// navegação seguinte consulta o armazenamento e precisa encontrar o token.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (bool, error) {
	session, err := uc.authRepo.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, types.ErrInvalidCredentials) {
			return false, nil
		}
		return false, err
	}

	if err := uc.sessions.Save(*session); err != nil {
		return false, fmt.Errorf("error persisting session: %w", err)
	}
	return true, nil
}

// Logout limpa token e usuário juntos.
func (uc *AuthUseCase) Logout() error {
	return uc.sessions.Clear()
}

// ForgotPassword dispara a recuperação de senha e retorna a mensagem da API.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) (string, error) {
	return uc.authRepo.ForgotPassword(ctx, email)
}

// Restore relê a sessão persistida no início do processo.
func (uc *AuthUseCase) Restore() entity.Session {
	return uc.sessions.Restore()
}

// IsAuthenticated delega a checagem autoritativa ao armazenamento durável.
func (uc *AuthUseCase) IsAuthenticated() bool {
	return uc.sessions.IsAuthenticated()
}

// CurrentUser retorna o usuário da sessão, se houver.
func (uc *AuthUseCase) CurrentUser() *entity.User {
	return uc.sessions.CurrentUser()
}

// Token expõe o bearer token atual (usado pelo comando status).
func (uc *AuthUseCase) Token() string {
	return uc.sessions.Token()
}
