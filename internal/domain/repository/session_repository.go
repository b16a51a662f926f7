package repository

import "github.com/mersoabreu/fincontrol/internal/domain/entity"

// SessionRepository é o armazenamento durável da sessão autenticada.
//
// Implementations must keep token and user together: Save persists both
// atomically and Clear removes both. When no durable storage is available
// every method degrades to a silent no-op over an empty session.
type SessionRepository interface {
	// Save persiste token e usuário juntos e notifica os inscritos.
	Save(session entity.Session) error

	// Clear remove a sessão persistida e notifica os inscritos.
	Clear() error

	// Restore relê o estado persistido (chamado no início do processo).
	Restore() entity.Session

	// IsAuthenticated consulta o armazenamento durável, não a cópia em
	// memória, já que os dois podem divergir entre processos.
	IsAuthenticated() bool

	Token() string
	CurrentUser() *entity.User

	// Subscribe registra um callback invocado a cada mudança do estado de
	// autenticação.
	Subscribe(fn func(authenticated bool))

	// Available reports whether durable storage can be used at all.
	Available() bool
}
