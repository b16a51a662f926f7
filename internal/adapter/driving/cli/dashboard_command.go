package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mersoabreu/fincontrol/internal/application/usecase"
	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
	"github.com/mersoabreu/fincontrol/pkg/console"
	"github.com/mersoabreu/fincontrol/pkg/money"
	"github.com/mersoabreu/fincontrol/pkg/version"
)

func (app *CLIApp) newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Show the monthly summary and transaction list",
		PreRunE: app.requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner()
			go version.CheckLatestVersion(app.version)

			app.buildUseCases()

			cliArgs, err := app.parseListArgs(cmd)
			if err != nil {
				return err
			}
			if err := app.loadHome(cmd, cliArgs); err != nil {
				app.console.LogError("Erro ao carregar o dashboard: %s", err)
				return err
			}

			app.renderSummary()
			app.renderTransactions(app.homeUseCase.Transactions())

			return app.exportIfRequested(cliArgs)
		},
	}

	addListFlags(cmd)
	addReportFlags(cmd)
	return cmd
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("tab", "T", "", "Filter tab: all, expenses or income")
	cmd.Flags().IntP("month", "m", 0, "Month to display (1-12, default: current)")
	cmd.Flags().IntP("year", "y", 0, "Year to display (default: current)")
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("report-name", "n", "", "Base name for the exported report file (without extension)")
	cmd.Flags().StringSliceP("report-type", "t", nil, "Report types: csv, json, pdf")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files")
}

// parseListArgs mescla flags e configuração nos argumentos da listagem.
func (app *CLIApp) parseListArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	tab, _ := cmd.Flags().GetString("tab")
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")

	if tab == "" {
		tab = app.config.Tab
	}
	if tab == "" {
		tab = string(usecase.TabAll)
	}
	if len(reportType) == 0 {
		reportType = app.config.ReportType
	}
	if dir == "" {
		dir = app.config.Dir
	}
	if month != 0 && (month < 1 || month > 12) {
		return nil, fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}

	return &types.CLIArgs{
		Tab:        tab,
		Month:      month,
		Year:       year,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}, nil
}

// loadHome posiciona aba e cursor e faz a carga inicial de lista e resumo.
func (app *CLIApp) loadHome(cmd *cobra.Command, cliArgs *types.CLIArgs) error {
	tab, err := usecase.ParseTab(cliArgs.Tab)
	if err != nil {
		return err
	}
	app.homeUseCase.InitTab(tab)

	if cliArgs.Month > 0 || cliArgs.Year > 0 {
		now := time.Now()
		month, year := cliArgs.Month, cliArgs.Year
		if month == 0 {
			month = int(now.Month())
		}
		if year == 0 {
			year = now.Year()
		}
		app.homeUseCase.SetCursor(month, year)
	}

	status := app.console.Status("Carregando " + app.homeUseCase.MonthLabel() + "...")
	defer status.Stop()
	return app.homeUseCase.Load(cmd.Context())
}

// renderSummary exibe os cartões de receitas, despesas e saldo do mês.
func (app *CLIApp) renderSummary() {
	summary := app.homeUseCase.Summary()
	if summary == nil {
		return
	}

	content := fmt.Sprintf("%s  %s      %s  %s      %s  %s",
		"Receitas:", console.BrightGreen(money.FormatBRL(summary.Receitas)),
		"Despesas:", console.BrightRed(money.FormatBRL(summary.Despesas)),
		"Saldo:", colorSaldo(summary.Saldo),
	)
	app.console.DisplayPanel(app.homeUseCase.MonthLabel(), content)
}

func colorSaldo(saldo int64) string {
	if saldo < 0 {
		return console.BrightRed(money.FormatBRL(saldo))
	}
	return console.BrightGreen(money.FormatBRL(saldo))
}

// renderTransactions imprime a tabela de transações do mês corrente.
func (app *CLIApp) renderTransactions(transactions []entity.Transaction) {
	if len(transactions) == 0 {
		app.console.LogInfo("Nenhuma transação em %s", app.homeUseCase.MonthLabel())
		return
	}

	table := app.console.CreateTable()
	for _, col := range []string{"ID", "Descrição", "Categoria", "Vencimento", "Pagamento", "Recorrência", "Status", "Valor"} {
		table.AddColumn(col)
	}

	for _, t := range transactions {
		paidDate := "-"
		if t.PaidDate != nil {
			paidDate = *t.PaidDate
		}

		statusCell := console.BrightYellow("Em aberto")
		if t.IsPaid() {
			statusCell = console.BrightGreen("Paga")
		}

		amountCell := console.BrightRed("- " + money.FormatBRL(t.Amount))
		if t.Type == entity.TypeIncome {
			amountCell = console.BrightGreen("+ " + money.FormatBRL(t.Amount))
		}

		table.AddRow(t.ID, t.Description, t.Category, t.DueDate, paidDate, t.Recurrence, statusCell, amountCell)
	}

	app.console.Println(table.Render())
}

// exportIfRequested exporta o relatório do mês quando --report-name é dado.
func (app *CLIApp) exportIfRequested(cliArgs *types.CLIArgs) error {
	if cliArgs.ReportName == "" {
		return nil
	}

	reportTypes := cliArgs.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	report := entity.TransactionReport{
		Month:        app.homeUseCase.Month(),
		Year:         app.homeUseCase.Year(),
		Transactions: app.homeUseCase.Transactions(),
		GeneratedAt:  time.Now(),
	}
	if summary := app.homeUseCase.Summary(); summary != nil {
		report.Summary = *summary
	}
	if user := app.authUseCase.CurrentUser(); user != nil {
		report.UserEmail = user.Email
	}

	for _, reportType := range reportTypes {
		var path string
		var err error
		switch reportType {
		case "csv":
			path, err = app.exportRepo.ExportToCSV(report, cliArgs.ReportName, cliArgs.Dir)
		case "json":
			path, err = app.exportRepo.ExportToJSON(report, cliArgs.ReportName, cliArgs.Dir)
		case "pdf":
			path, err = app.exportRepo.ExportToPDF(report, cliArgs.ReportName, cliArgs.Dir)
		default:
			app.console.LogWarning("Unknown report type: %s", reportType)
			continue
		}
		if err != nil {
			app.console.LogError("Failed to export %s report: %s", reportType, err)
		} else {
			app.console.LogSuccess("Successfully exported %s report: %s", reportType, path)
		}
	}
	return nil
}
