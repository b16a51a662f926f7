package cli

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (app *CLIApp) newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Authenticate against the finance API",
		PreRunE: app.requireGuest,
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner()
			app.buildUseCases()

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			var err error
			if email == "" {
				email, err = pterm.DefaultInteractiveTextInput.Show("Email")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Senha")
				if err != nil {
					return err
				}
			}

			status := app.console.Status("Autenticando...")
			ok, err := app.authUseCase.Login(cmd.Context(), email, password)
			status.Stop()

			if err != nil {
				app.console.LogError("Erro ao fazer login. Tente novamente. (%s)", err)
				return err
			}
			if !ok {
				app.console.LogError("Email ou senha incorretos")
				return nil
			}

			user := app.authUseCase.CurrentUser()
			if user != nil {
				app.console.LogSuccess("Bem-vindo, %s!", user.Name)
			} else {
				app.console.LogSuccess("Login efetuado com sucesso")
			}
			app.console.LogInfo("Use 'fincontrol dashboard' para ver o resumo do mês")
			return nil
		},
	}

	cmd.Flags().StringP("email", "e", "", "Account email")
	cmd.Flags().StringP("password", "p", "", "Account password (prompted when omitted)")
	return cmd
}

func (app *CLIApp) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Clear the stored session",
		PreRunE: app.requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()
			if err := app.authUseCase.Logout(); err != nil {
				return err
			}
			app.console.LogSuccess("Sessão encerrada")
			return nil
		},
	}
}

func (app *CLIApp) newForgotPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forgot-password",
		Short:   "Request a password recovery email",
		PreRunE: app.requireGuest,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()

			email, _ := cmd.Flags().GetString("email")
			var err error
			if email == "" {
				email, err = pterm.DefaultInteractiveTextInput.Show("Email")
				if err != nil {
					return err
				}
			}

			message, err := app.authUseCase.ForgotPassword(cmd.Context(), email)
			if err != nil {
				app.console.LogError("Erro ao solicitar recuperação de senha: %s", err)
				return err
			}
			app.console.LogSuccess("%s", message)
			return nil
		},
	}

	cmd.Flags().StringP("email", "e", "", "Account email")
	return cmd
}

func (app *CLIApp) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()

			if !app.authUseCase.IsAuthenticated() {
				app.console.LogInfo("Nenhuma sessão ativa. Use 'fincontrol login'.")
				return nil
			}

			user := app.authUseCase.CurrentUser()
			if user != nil {
				app.console.LogSuccess("Autenticado como %s <%s>", user.Name, user.Email)
			} else {
				app.console.LogSuccess("Autenticado")
			}

			// O token é opaco para o cliente; quando por acaso é um JWT,
			// mostramos o exp como cortesia. A validade continua sendo
			// decidida exclusivamente pela API.
			if expiry := tokenExpiry(app.authUseCase.Token()); expiry != nil {
				if time.Now().After(*expiry) {
					app.console.LogWarning("Token expirado em %s (a API fará o logout na próxima chamada)", expiry.Format("02/01/2006 15:04"))
				} else {
					app.console.LogInfo("Sessão expira em %s", expiry.Format("02/01/2006 15:04"))
				}
			}
			return nil
		},
	}
}

// tokenExpiry extrai o claim exp sem validar a assinatura. Tokens que não são
// JWTs válidos simplesmente não têm expiração exibível.
func tokenExpiry(token string) *time.Time {
	if token == "" {
		return nil
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	return &exp.Time
}
