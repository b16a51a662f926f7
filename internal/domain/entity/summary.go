package entity

// DashboardSummary é o agregado mensal retornado por GET /dashboard/summary.
// Receitas, Despesas e Saldo são valores em unidades menores (centavos).
type DashboardSummary struct {
	Receitas int64  `json:"receitas"`
	Despesas int64  `json:"despesas"`
	Saldo    int64  `json:"saldo"`
	Month    string `json:"month"`
	Year     int    `json:"year"`
}
