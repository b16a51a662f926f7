package entity

// TransactionType distingue receitas de despesas.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// TransactionStatus indica se a transação já foi paga.
type TransactionStatus string

const (
	StatusOpen TransactionStatus = "open"
	StatusPaid TransactionStatus = "paid"
)

// Transaction represents a single income or expense entry owned by the remote API.
// Amount is always an integer amount of minor currency units (centavos).
type Transaction struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId,omitempty"`
	Description string            `json:"description"`
	Amount      int64             `json:"amount"`
	Category    string            `json:"category"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	DueDate     string            `json:"dueDate"`
	PaidDate    *string           `json:"paidDate,omitempty"`
	Recurrence  string            `json:"recurrence"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	UpdatedAt   string            `json:"updatedAt,omitempty"`
}

// IsPaid reports whether the transaction has been settled.
func (t Transaction) IsPaid() bool {
	return t.Status == StatusPaid
}

// CreateTransactionInput é o payload aceito pelo POST /transactions.
type CreateTransactionInput struct {
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	DueDate     string          `json:"dueDate"`
	Recurrence  string          `json:"recurrence"`
}

// UpdateTransactionInput é o payload parcial do PATCH /transactions/{id}.
// Nil fields are omitted from the request body.
type UpdateTransactionInput struct {
	Description *string          `json:"description,omitempty"`
	Amount      *int64           `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Type        *TransactionType `json:"type,omitempty"`
	DueDate     *string          `json:"dueDate,omitempty"`
	Recurrence  *string          `json:"recurrence,omitempty"`
}

// TransactionFilter narrows GET /transactions. Zero values are omitted from
// the query string rather than sent as empty parameters.
type TransactionFilter struct {
	Type   TransactionType
	Status TransactionStatus
	Month  int
	Year   int
}

// Categorias e recorrências oferecidas no formulário. A API aceita rótulos
// livres; estas listas existem apenas para os prompts interativos.
var Categories = []string{
	"Alimentação",
	"Transporte",
	"Moradia",
	"Saúde",
	"Educação",
	"Lazer",
	"Trabalho",
	"Utilidades",
	"Outros",
}

var RecurrenceOptions = []string{
	"Única",
	"Semanal",
	"Mensal",
	"Anual",
}
