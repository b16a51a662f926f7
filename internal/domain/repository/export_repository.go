package repository

import (
	"github.com/mersoabreu/fincontrol/internal/domain/entity"
)

// ExportRepository exporta o relatório mensal de transações.
type ExportRepository interface {
	ExportToCSV(report entity.TransactionReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.TransactionReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.TransactionReport, filename string, outputDir string) (string, error)
}
