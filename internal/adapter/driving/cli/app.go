package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mersoabreu/fincontrol/internal/adapter/driven/api"
	"github.com/mersoabreu/fincontrol/internal/application/usecase"
	"github.com/mersoabreu/fincontrol/internal/domain/repository"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
	"github.com/mersoabreu/fincontrol/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	version string

	config     types.Config
	sessions   repository.SessionRepository
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface

	authUseCase     *usecase.AuthUseCase
	homeUseCase     *usecase.HomeUseCase
	transactionRepo repository.TransactionRepository
}

// Dependencies agrupa os colaboradores injetados pelo main.
type Dependencies struct {
	Config     types.Config
	Sessions   repository.SessionRepository
	ConfigRepo repository.ConfigRepository
	ExportRepo repository.ExportRepository
	Console    types.ConsoleInterface
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "fincontrol",
		Short:   "FinControl — personal finance dashboard CLI",
		Version: formattedVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadConfigFile(cmd)
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "FinControl version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the finance API (overrides config)")

	app.rootCmd = rootCmd
	return app
}

// SetDependencies injeta os colaboradores e registra os comandos.
func (app *CLIApp) SetDependencies(deps Dependencies) {
	app.config = deps.Config
	app.sessions = deps.Sessions
	app.configRepo = deps.ConfigRepo
	app.exportRepo = deps.ExportRepo
	app.console = deps.Console

	app.rootCmd.AddCommand(
		app.newLoginCmd(),
		app.newLogoutCmd(),
		app.newForgotPasswordCmd(),
		app.newStatusCmd(),
		app.newDashboardCmd(),
		app.newTransactionsCmd(),
	)
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// loadConfigFile mescla o arquivo de configuração e as flags globais sobre a
// configuração vinda do ambiente.
func (app *CLIApp) loadConfigFile(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config-file")
	if configFile != "" {
		fileConfig, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		if fileConfig.APIURL != "" {
			app.config.APIURL = fileConfig.APIURL
		}
		if fileConfig.TimeoutSeconds > 0 {
			app.config.TimeoutSeconds = fileConfig.TimeoutSeconds
		}
		if fileConfig.Dir != "" {
			app.config.Dir = fileConfig.Dir
		}
		if len(fileConfig.ReportType) > 0 {
			app.config.ReportType = fileConfig.ReportType
		}
		if fileConfig.Tab != "" {
			app.config.Tab = fileConfig.Tab
		}
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		app.config.APIURL = apiURL
	}
	return nil
}

// buildUseCases monta o cliente da API e os casos de uso sobre a configuração
// já mesclada. O callback de 401 é o "redirect" para o login.
func (app *CLIApp) buildUseCases() {
	if app.authUseCase != nil {
		return
	}

	timeout := time.Duration(app.config.TimeoutSeconds) * time.Second
	client := api.NewClient(
		app.config.APIURL,
		app.sessions,
		api.WithTimeout(timeout),
		api.WithOnUnauthorized(func() {
			app.console.LogWarning("Sessão expirada. Faça login novamente com 'fincontrol login'.")
		}),
	)

	app.authUseCase = usecase.NewAuthUseCase(client, app.sessions)
	app.homeUseCase = usecase.NewHomeUseCase(client, client)
	app.transactionRepo = client
}
