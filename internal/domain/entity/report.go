package entity

import "time"

// TransactionReport agrupa os dados de um mês para exportação (CSV, JSON, PDF).
type TransactionReport struct {
	UserEmail    string           `json:"user_email,omitempty"`
	Month        int              `json:"month"`
	Year         int              `json:"year"`
	Summary      DashboardSummary `json:"summary"`
	Transactions []Transaction    `json:"transactions"`
	GeneratedAt  time.Time        `json:"generated_at"`
}
