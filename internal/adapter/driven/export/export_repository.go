package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/domain/repository"
	"github.com/mersoabreu/fincontrol/pkg/money"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func typeLabel(t entity.TransactionType) string {
	if t == entity.TypeIncome {
		return "Receita"
	}
	return "Despesa"
}

func statusLabel(s entity.TransactionStatus) string {
	if s == entity.StatusPaid {
		return "Paga"
	}
	return "Em aberto"
}

// ExportToCSV grava o relatório mensal como CSV.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.TransactionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"ID", "Descrição", "Categoria", "Tipo", "Status", "Vencimento", "Pagamento", "Recorrência", "Valor (R$)"}
	writer.Write(headers)

	for _, t := range report.Transactions {
		paidDate := ""
		if t.PaidDate != nil {
			paidDate = *t.PaidDate
		}
		record := []string{
			fmt.Sprintf("%d", t.ID),
			t.Description,
			t.Category,
			typeLabel(t.Type),
			statusLabel(t.Status),
			t.DueDate,
			paidDate,
			t.Recurrence,
			money.FormatCentavos(t.Amount),
		}
		writer.Write(record)
	}

	writer.Write([]string{})
	writer.Write([]string{"Receitas", money.FormatCentavos(report.Summary.Receitas)})
	writer.Write([]string{"Despesas", money.FormatCentavos(report.Summary.Despesas)})
	writer.Write([]string{"Saldo", money.FormatCentavos(report.Summary.Saldo)})

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o relatório mensal como JSON indentado.
func (r *ExportRepositoryImpl) ExportToJSON(report entity.TransactionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF grava o relatório mensal como PDF: cabeçalho com o período,
// resumo de receitas/despesas/saldo e a tabela de transações.
func (r *ExportRepositoryImpl) ExportToPDF(report entity.TransactionReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  FinControl — %02d/%d", report.Month, report.Year)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	if report.UserEmail != "" {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Usuário: %s", report.UserEmail)), "", 1, "L", true, 0, "")
	}
	pdf.Ln(8)

	// Resumo do mês
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr("Resumo do mês"))
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 128, 0)
	pdf.CellFormat(63, 8, tr(fmt.Sprintf("Receitas: %s", money.FormatBRL(report.Summary.Receitas))), "", 0, "L", false, 0, "")
	pdf.SetTextColor(192, 0, 0)
	pdf.CellFormat(63, 8, tr(fmt.Sprintf("Despesas: %s", money.FormatBRL(report.Summary.Despesas))), "", 0, "L", false, 0, "")
	if report.Summary.Saldo >= 0 {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(192, 0, 0)
	}
	pdf.CellFormat(64, 8, tr(fmt.Sprintf("Saldo: %s", money.FormatBRL(report.Summary.Saldo))), "", 1, "L", false, 0, "")
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.Ln(8)

	// Tabela de transações
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr("Transações"))
	pdf.Ln(7)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	colWidths := []float64{55, 30, 20, 22, 25, 38}
	columns := []string{"Descrição", "Categoria", "Tipo", "Status", "Vencimento", "Valor"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range columns {
		pdf.CellFormat(colWidths[i], 7, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, t := range report.Transactions {
		description := t.Description
		if len(description) > 32 {
			description = description[:29] + "..."
		}
		cells := []string{
			description,
			t.Category,
			typeLabel(t.Type),
			statusLabel(t.Status),
			t.DueDate,
			money.FormatBRL(t.Amount),
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(report.Transactions) == 0 {
		pdf.CellFormat(190, 6, tr("Nenhuma transação no período"), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Gerado em %s", report.GeneratedAt.Format("02/01/2006 15:04"))))

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
