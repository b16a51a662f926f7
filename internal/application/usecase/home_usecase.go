package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/domain/repository"
	"github.com/mersoabreu/fincontrol/pkg/money"
)

// Tab é a aba ativa da lista de transações.
type Tab string

const (
	TabAll      Tab = "all"
	TabExpenses Tab = "expenses"
	TabIncome   Tab = "income"
)

// TypeFilter traduz a aba para o filtro de tipo enviado à API. A aba "all"
// não envia parâmetro algum.
func (t Tab) TypeFilter() entity.TransactionType {
	switch t {
	case TabExpenses:
		return entity.TypeExpense
	case TabIncome:
		return entity.TypeIncome
	default:
		return ""
	}
}

// ParseTab valida o valor vindo da CLI.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabAll, TabExpenses, TabIncome:
		return Tab(s), nil
	}
	return "", fmt.Errorf("invalid tab %q: must be all, expenses or income", s)
}

var monthNames = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// TransactionForm é o estado do formulário de criação/edição. Amount fica em
// texto até o Submit, quando a string decimal vira centavos.
type TransactionForm struct {
	Description string                 `validate:"required"`
	Amount      string                 `validate:"required"`
	Category    string                 `validate:"required"`
	Type        entity.TransactionType `validate:"required,oneof=income expense"`
	DueDate     string                 `validate:"required"`
	Recurrence  string                 `validate:"required"`
}

// HomeUseCase é a máquina de estado da tela principal: aba ativa, cursor de
// mês, lista carregada, resumo e formulário. Depois de qualquer mutação a
// lista e o resumo são SEMPRE recarregados do servidor; nenhum patch local
// sobrevive a um round trip.
type HomeUseCase struct {
	transactionRepo repository.TransactionRepository
	dashboardRepo   repository.DashboardRepository
	validate        *validator.Validate

	activeTab    Tab
	cursor       time.Time
	transactions []entity.Transaction
	summary      *entity.DashboardSummary

	form         TransactionForm
	formOpen     bool
	editingID    *int64
	deleteTarget *int64
	touched      []string
}

// NewHomeUseCase creates the home use case with the cursor on the current month.
func NewHomeUseCase(transactionRepo repository.TransactionRepository, dashboardRepo repository.DashboardRepository) *HomeUseCase {
	now := time.Now()
	return &HomeUseCase{
		transactionRepo: transactionRepo,
		dashboardRepo:   dashboardRepo,
		validate:        validator.New(),
		activeTab:       TabAll,
		cursor:          time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

// InitTab define a aba ativa sem disparar recarga; usado antes do Load
// inicial para não buscar a lista duas vezes.
func (uc *HomeUseCase) InitTab(tab Tab) {
	uc.activeTab = tab
}

// SetCursor posiciona o cursor em um mês/ano específico (flags --month/--year).
func (uc *HomeUseCase) SetCursor(month, year int) {
	uc.cursor = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// Month retorna o mês do cursor (1-12).
func (uc *HomeUseCase) Month() int { return int(uc.cursor.Month()) }

// Year retorna o ano do cursor.
func (uc *HomeUseCase) Year() int { return uc.cursor.Year() }

// MonthLabel formata o cursor no padrão da tela, ex.: "Jan 2026".
func (uc *HomeUseCase) MonthLabel() string {
	return fmt.Sprintf("%s %d", monthNames[uc.cursor.Month()-1], uc.cursor.Year())
}

// ActiveTab retorna a aba ativa.
func (uc *HomeUseCase) ActiveTab() Tab { return uc.activeTab }

// Transactions retorna a lista carregada.
func (uc *HomeUseCase) Transactions() []entity.Transaction { return uc.transactions }

// Summary retorna o resumo carregado, se houver.
func (uc *HomeUseCase) Summary() *entity.DashboardSummary { return uc.summary }

// PaidTransactions filtra localmente as transações já pagas da lista carregada.
func (uc *HomeUseCase) PaidTransactions() []entity.Transaction {
	var paid []entity.Transaction
	for _, t := range uc.transactions {
		if t.IsPaid() {
			paid = append(paid, t)
		}
	}
	return paid
}

// OpenTransactions filtra localmente as transações em aberto.
func (uc *HomeUseCase) OpenTransactions() []entity.Transaction {
	var open []entity.Transaction
	for _, t := range uc.transactions {
		if !t.IsPaid() {
			open = append(open, t)
		}
	}
	return open
}

// Load faz a carga inicial de lista e resumo.
func (uc *HomeUseCase) Load(ctx context.Context) error {
	return uc.reloadAll(ctx)
}

// SetActiveTab troca a aba e recarrega a lista com o filtro aplicado no
// servidor; o resumo do mês não depende da aba e não é recarregado.
func (uc *HomeUseCase) SetActiveTab(ctx context.Context, tab Tab) error {
	uc.activeTab = tab
	return uc.reloadList(ctx)
}

// PreviousMonth move o cursor um mês para trás e recarrega lista e resumo.
// AddDate cuida da virada de ano (Janeiro - 1 = Dezembro do ano anterior).
func (uc *HomeUseCase) PreviousMonth(ctx context.Context) error {
	uc.cursor = uc.cursor.AddDate(0, -1, 0)
	return uc.reloadAll(ctx)
}

// NextMonth move o cursor um mês para frente e recarrega lista e resumo.
func (uc *HomeUseCase) NextMonth(ctx context.Context) error {
	uc.cursor = uc.cursor.AddDate(0, 1, 0)
	return uc.reloadAll(ctx)
}

// OpenForm abre o formulário em modo de criação com os padrões de tela:
// despesa, vencimento hoje, recorrência única.
func (uc *HomeUseCase) OpenForm() {
	uc.form = TransactionForm{
		Type:       entity.TypeExpense,
		DueDate:    time.Now().Format("2006-01-02"),
		Recurrence: "Única",
	}
	uc.editingID = nil
	uc.formOpen = true
	uc.touched = nil
}

// EditTransaction abre o formulário preenchido com a transação alvo. O id
// registrado decide entre create e update no Submit.
func (uc *HomeUseCase) EditTransaction(t entity.Transaction) {
	uc.form = TransactionForm{
		Description: t.Description,
		Amount:      money.FormatCentavos(t.Amount),
		Category:    t.Category,
		Type:        t.Type,
		DueDate:     t.DueDate,
		Recurrence:  t.Recurrence,
	}
	id := t.ID
	uc.editingID = &id
	uc.formOpen = true
	uc.touched = nil
}

// CloseForm descarta o formulário sem enviar nada.
func (uc *HomeUseCase) CloseForm() {
	uc.form = TransactionForm{}
	uc.editingID = nil
	uc.formOpen = false
	uc.touched = nil
}

// FormOpen reports whether the create/edit form is active.
func (uc *HomeUseCase) FormOpen() bool { return uc.formOpen }

// Editing reports whether the form targets an existing transaction.
func (uc *HomeUseCase) Editing() bool { return uc.editingID != nil }

// Form retorna uma cópia do estado atual do formulário.
func (uc *HomeUseCase) Form() TransactionForm { return uc.form }

// SetForm substitui o estado do formulário (preenchido pela camada de CLI).
func (uc *HomeUseCase) SetForm(form TransactionForm) { uc.form = form }

// TouchedFields lista os campos reprovados na última validação, para o
// feedback visual da camada de apresentação.
func (uc *HomeUseCase) TouchedFields() []string { return uc.touched }

// Submit valida o formulário, converte o valor decimal para centavos e
// despacha create ou update conforme o modo. No sucesso recarrega lista e
// resumo e fecha o formulário; em qualquer falha o formulário continua
// aberto e o erro volta para a camada de apresentação.
func (uc *HomeUseCase) Submit(ctx context.Context) error {
	uc.touched = nil
	if err := uc.validate.Struct(uc.form); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			for _, fieldErr := range invalid {
				uc.touched = append(uc.touched, fieldErr.Field())
			}
			return fmt.Errorf("required fields missing: %v", uc.touched)
		}
		return err
	}

	amount, err := money.ParseToCentavos(uc.form.Amount)
	if err != nil {
		uc.touched = []string{"Amount"}
		return fmt.Errorf("invalid amount %q: %w", uc.form.Amount, err)
	}

	if uc.editingID != nil {
		input := entity.UpdateTransactionInput{
			Description: &uc.form.Description,
			Amount:      &amount,
			Category:    &uc.form.Category,
			Type:        &uc.form.Type,
			DueDate:     &uc.form.DueDate,
			Recurrence:  &uc.form.Recurrence,
		}
		if _, err := uc.transactionRepo.Update(ctx, *uc.editingID, input); err != nil {
			return err
		}
	} else {
		input := entity.CreateTransactionInput{
			Description: uc.form.Description,
			Amount:      amount,
			Category:    uc.form.Category,
			Type:        uc.form.Type,
			DueDate:     uc.form.DueDate,
			Recurrence:  uc.form.Recurrence,
		}
		if _, err := uc.transactionRepo.Create(ctx, input); err != nil {
			return err
		}
	}

	if err := uc.reloadAll(ctx); err != nil {
		return err
	}
	uc.CloseForm()
	return nil
}

// RequestDelete arma a confirmação de exclusão para o id informado.
func (uc *HomeUseCase) RequestDelete(id int64) {
	uc.deleteTarget = &id
}

// CancelDelete desarma a confirmação sem tocar no servidor.
func (uc *HomeUseCase) CancelDelete() {
	uc.deleteTarget = nil
}

// DeletePending reports whether a delete confirmation is armed.
func (uc *HomeUseCase) DeletePending() bool { return uc.deleteTarget != nil }

// ConfirmDelete envia a exclusão e recarrega lista e resumo no sucesso. Na
// falha a lista atual fica intacta: nada é removido localmente antes da
// confirmação do servidor.
func (uc *HomeUseCase) ConfirmDelete(ctx context.Context) error {
	if uc.deleteTarget == nil {
		return nil
	}
	id := *uc.deleteTarget
	uc.deleteTarget = nil

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.reloadAll(ctx)
}

// MarkAsPaid marca a transação como paga no servidor e recarrega tudo. O
// paidDate que aparece depois vem da recarga, nunca de um flip local.
func (uc *HomeUseCase) MarkAsPaid(ctx context.Context, t entity.Transaction) error {
	if _, err := uc.transactionRepo.MarkAsPaid(ctx, t.ID); err != nil {
		return err
	}
	return uc.reloadAll(ctx)
}

func (uc *HomeUseCase) currentFilter() entity.TransactionFilter {
	return entity.TransactionFilter{
		Type:  uc.activeTab.TypeFilter(),
		Month: uc.Month(),
		Year:  uc.Year(),
	}
}

func (uc *HomeUseCase) reloadList(ctx context.Context) error {
	transactions, err := uc.transactionRepo.List(ctx, uc.currentFilter())
	if err != nil {
		return err
	}
	uc.transactions = transactions
	return nil
}

// reloadAll recarrega lista e resumo em paralelo; são leituras independentes
// e as duas precisam concluir antes de a tela ser considerada assentada.
func (uc *HomeUseCase) reloadAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	var transactions []entity.Transaction
	var summary *entity.DashboardSummary

	g.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.List(gctx, uc.currentFilter())
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = uc.dashboardRepo.GetSummary(gctx, uc.Month(), uc.Year())
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	uc.transactions = transactions
	uc.summary = summary
	return nil
}
