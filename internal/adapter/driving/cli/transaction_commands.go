package cli

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mersoabreu/fincontrol/internal/application/usecase"
	"github.com/mersoabreu/fincontrol/internal/domain/entity"
)

func (app *CLIApp) newTransactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Manage transactions",
	}

	cmd.AddCommand(
		app.newTxListCmd(),
		app.newTxAddCmd(),
		app.newTxEditCmd(),
		app.newTxRemoveCmd(),
		app.newTxPayCmd(),
	)
	return cmd
}

func (app *CLIApp) newTxListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions for a month",
		PreRunE: app.requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()

			cliArgs, err := app.parseListArgs(cmd)
			if err != nil {
				return err
			}
			if err := app.loadHome(cmd, cliArgs); err != nil {
				return err
			}

			app.renderTransactions(app.homeUseCase.Transactions())
			return app.exportIfRequested(cliArgs)
		},
	}

	addListFlags(cmd)
	addReportFlags(cmd)
	return cmd
}

func (app *CLIApp) newTxAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"new"},
		Short:   "Create a transaction",
		PreRunE: app.requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()
			app.homeUseCase.OpenForm()

			form := app.homeUseCase.Form()
			if err := applyFormFlags(cmd, &form); err != nil {
				return err
			}

			interactive, _ := cmd.Flags().GetBool("interactive")
			if interactive {
				if err := promptForm(&form); err != nil {
					return err
				}
			}
			app.homeUseCase.SetForm(form)

			if err := app.submitForm(cmd); err != nil {
				return err
			}
			app.console.LogSuccess("Transação criada")
			app.renderSummary()
			return nil
		},
	}

	addFormFlags(cmd)
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for each field")
	return cmd
}

func (app *CLIApp) newTxEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit a transaction",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := app.transactionRepo.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.homeUseCase.EditTransaction(*current)

			form := app.homeUseCase.Form()
			if err := applyFormFlags(cmd, &form); err != nil {
				return err
			}

			interactive, _ := cmd.Flags().GetBool("interactive")
			if interactive {
				if err := promptForm(&form); err != nil {
					return err
				}
			}
			app.homeUseCase.SetForm(form)

			if err := app.submitForm(cmd); err != nil {
				return err
			}
			app.console.LogSuccess("Transação %d atualizada", id)
			return nil
		},
	}

	addFormFlags(cmd)
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for each field")
	return cmd
}

func (app *CLIApp) newTxRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app.homeUseCase.RequestDelete(id)

			// A confirmação é local; o servidor só é consultado depois do
			// sim. Um id desconhecido vira um 404 vindo da API.
			assumeYes, _ := cmd.Flags().GetBool("yes")
			if !assumeYes {
				confirmed, err := pterm.DefaultInteractiveConfirm.
					Show(fmt.Sprintf("Excluir a transação %d?", id))
				if err != nil {
					return err
				}
				if !confirmed {
					app.homeUseCase.CancelDelete()
					app.console.LogInfo("Exclusão cancelada")
					return nil
				}
			}

			if err := app.homeUseCase.ConfirmDelete(cmd.Context()); err != nil {
				app.console.LogError("Erro ao excluir a transação: %s", err)
				return err
			}
			app.console.LogSuccess("Transação %d excluída", id)
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (app *CLIApp) newTxPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pay <id>",
		Short:   "Mark a transaction as paid",
		Args:    cobra.ExactArgs(1),
		PreRunE: app.requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.buildUseCases()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.homeUseCase.MarkAsPaid(cmd.Context(), entity.Transaction{ID: id}); err != nil {
				app.console.LogError("Erro ao marcar como paga: %s", err)
				return err
			}
			app.console.LogSuccess("Transação %d marcada como paga", id)
			app.renderSummary()
			return nil
		},
	}
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("description", "", "Transaction description")
	cmd.Flags().String("amount", "", `Amount as a decimal string, e.g. "15,20"`)
	cmd.Flags().String("category", "", "Category name")
	cmd.Flags().String("type", "", "Transaction type: income or expense")
	cmd.Flags().String("due-date", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("recurrence", "", "Recurrence: Única, Semanal, Mensal or Anual")
}

// applyFormFlags sobrepõe ao formulário apenas os campos informados por flag.
func applyFormFlags(cmd *cobra.Command, form *usecase.TransactionForm) error {
	if v, _ := cmd.Flags().GetString("description"); v != "" {
		form.Description = v
	}
	if v, _ := cmd.Flags().GetString("amount"); v != "" {
		form.Amount = v
	}
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		form.Category = v
	}
	if v, _ := cmd.Flags().GetString("type"); v != "" {
		switch entity.TransactionType(v) {
		case entity.TypeIncome, entity.TypeExpense:
			form.Type = entity.TransactionType(v)
		default:
			return fmt.Errorf("invalid type %q: must be income or expense", v)
		}
	}
	if v, _ := cmd.Flags().GetString("due-date"); v != "" {
		form.DueDate = v
	}
	if v, _ := cmd.Flags().GetString("recurrence"); v != "" {
		form.Recurrence = v
	}
	return nil
}

// promptForm percorre os campos do formulário com os prompts do pterm, usando
// o valor já presente como padrão.
func promptForm(form *usecase.TransactionForm) error {
	var err error

	form.Description, err = pterm.DefaultInteractiveTextInput.
		WithDefaultValue(form.Description).Show("Descrição")
	if err != nil {
		return err
	}

	form.Amount, err = pterm.DefaultInteractiveTextInput.
		WithDefaultValue(form.Amount).Show("Valor (ex.: 15,20)")
	if err != nil {
		return err
	}

	category, err := pterm.DefaultInteractiveSelect.
		WithOptions(entity.Categories).
		WithDefaultOption(form.Category).
		Show("Categoria")
	if err != nil {
		return err
	}
	form.Category = category

	txType, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{string(entity.TypeExpense), string(entity.TypeIncome)}).
		WithDefaultOption(string(form.Type)).
		Show("Tipo")
	if err != nil {
		return err
	}
	form.Type = entity.TransactionType(txType)

	form.DueDate, err = pterm.DefaultInteractiveTextInput.
		WithDefaultValue(form.DueDate).Show("Vencimento (AAAA-MM-DD)")
	if err != nil {
		return err
	}

	recurrence, err := pterm.DefaultInteractiveSelect.
		WithOptions(entity.RecurrenceOptions).
		WithDefaultOption(form.Recurrence).
		Show("Recorrência")
	if err != nil {
		return err
	}
	form.Recurrence = recurrence

	return nil
}

// submitForm envia o formulário e traduz as falhas de validação para o
// feedback da CLI; em falha o formulário segue aberto no caso de uso.
func (app *CLIApp) submitForm(cmd *cobra.Command) error {
	status := app.console.Status("Salvando...")
	err := app.homeUseCase.Submit(cmd.Context())
	status.Stop()

	if err != nil {
		if touched := app.homeUseCase.TouchedFields(); len(touched) > 0 {
			app.console.LogError("Campos obrigatórios ausentes ou inválidos: %v", touched)
		} else {
			app.console.LogError("Erro ao salvar a transação: %s", err)
		}
		return err
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction id %q", arg)
	}
	return id, nil
}
