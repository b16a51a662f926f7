package repository

import (
	"context"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
)

// AuthRepository defines the interface for the public auth endpoints.
type AuthRepository interface {
	// Login troca credenciais por um bearer token e o usuário correspondente.
	Login(ctx context.Context, email, password string) (*entity.Session, error)

	// ForgotPassword dispara o email de recuperação de senha.
	ForgotPassword(ctx context.Context, email string) (string, error)
}

// TransactionRepository defines the interface for the transaction endpoints.
type TransactionRepository interface {
	List(ctx context.Context, filter entity.TransactionFilter) ([]entity.Transaction, error)
	Get(ctx context.Context, id int64) (*entity.Transaction, error)
	Create(ctx context.Context, input entity.CreateTransactionInput) (*entity.Transaction, error)
	Update(ctx context.Context, id int64, input entity.UpdateTransactionInput) (*entity.Transaction, error)
	Delete(ctx context.Context, id int64) error
	MarkAsPaid(ctx context.Context, id int64) (*entity.Transaction, error)
}

// DashboardRepository defines the interface for the dashboard summary endpoint.
type DashboardRepository interface {
	GetSummary(ctx context.Context, month, year int) (*entity.DashboardSummary, error)
}
