package main

import (
	"fmt"
	"os"

	"github.com/mersoabreu/fincontrol/internal/adapter/driven/config"
	"github.com/mersoabreu/fincontrol/internal/adapter/driven/export"
	"github.com/mersoabreu/fincontrol/internal/adapter/driven/session"
	"github.com/mersoabreu/fincontrol/internal/adapter/driving/cli"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
	"github.com/mersoabreu/fincontrol/pkg/console"
	"github.com/mersoabreu/fincontrol/pkg/version"
)

func main() {
	// Configuração base: padrões, depois .env, depois o ambiente. O arquivo
	// passado por --config-file e as flags são mesclados pela própria CLI.
	config.LoadDotEnv()
	cfg := types.Config{
		APIURL:         config.DefaultAPIURL,
		TimeoutSeconds: 15,
	}
	config.ApplyEnv(&cfg)

	// Restaura a sessão gravada antes de qualquer guarda rodar.
	sessions := session.NewStore(session.DefaultDir())
	sessions.Restore()

	app := cli.NewCLIApp(version.Version)
	app.SetDependencies(cli.Dependencies{
		Config:     cfg,
		Sessions:   sessions,
		ConfigRepo: config.NewConfigRepository(),
		ExportRepo: export.NewExportRepository(),
		Console:    console.NewConsole(),
	})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
