package cli

import (
	"github.com/spf13/cobra"

	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

// Guards de navegação, executados antes do comando contra o estado já
// restaurado da sessão — nenhuma chamada de rede acontece aqui. A checagem
// consulta o armazenamento durável, então um logout feito por outro processo
// é visto imediatamente.
//
// requireAuth protege os comandos autenticados: sem sessão, o comando é
// negado e o usuário é apontado para o login. requireGuest é o inverso e
// protege os comandos exclusivos de visitante (login, forgot-password).

func (app *CLIApp) requireAuth(cmd *cobra.Command, args []string) error {
	if !app.sessions.IsAuthenticated() {
		return types.ErrNotAuthenticated
	}
	return nil
}

func (app *CLIApp) requireGuest(cmd *cobra.Command, args []string) error {
	if app.sessions.IsAuthenticated() {
		return types.ErrAlreadyAuthenticated
	}
	return nil
}
