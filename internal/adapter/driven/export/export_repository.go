package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/diillson/voyage-revenue-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// SummaryHeaders e DetailHeaders seguem a ordem das tabelas exibidas no terminal.
var (
	SummaryHeaders = []string{
		"Vessel",
		"Recognized Revenue (Actual)",
		"Recognized Revenue (Budget)",
		"Variance",
	}
	DetailHeaders = []string{
		"Vessel", "Trip No", "Start Date", "End Date", "Recognized Time",
		"Trip Details", "Total Load Quantity", "Total Trip Time",
		"Recognized Revenue", "Total Revenue",
	}
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// ExportReportToCSV gera um pacote de arquivos CSV: resumo, actual e budget.
func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.RevenueReport, baseFilename, outputDir string) ([]string, error) {
	var generatedFiles []string

	path, err := r.writeCSV(baseFilename+"_summary", outputDir, SummaryHeaders, SummaryRows(report.Summary))
	if err != nil {
		return generatedFiles, err
	}
	generatedFiles = append(generatedFiles, path)

	for _, ds := range []entity.DatasetReport{report.Actual, report.Budget} {
		path, err := r.writeCSV(baseFilename+"_"+ds.Name, outputDir, DetailHeaders, DetailRows(ds.Trips))
		if err != nil {
			return generatedFiles, err
		}
		generatedFiles = append(generatedFiles, path)
	}

	return generatedFiles, nil
}

func (r *ExportRepositoryImpl) writeCSV(base, outputDir string, headers []string, rows [][]string) (string, error) {
	outputFilename, err := r.generateFilename(base, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.RevenueReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
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

// ExportReportToPDF gera um PDF com o resumo por embarcação e uma seção de detalhes por dataset.
func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.RevenueReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	pageWidth := 277.0

	drawTitle := func(title, subtitle string) {
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr("  "+title), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr("  "+subtitle), "", 1, "L", true, 0, "")
		pdf.Ln(6)
	}

	drawTable := func(headers []string, widths []float64, rows [][]string) {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range rows {
			for i, cell := range row {
				align := "L"
				if i > 0 && isNumericColumn(headers[i]) {
					align = "R"
				}
				pdf.CellFormat(widths[i], 6, tr(truncate(cell, widths[i])), "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	generated := r.now().Format("2006-01-02")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Report %s | Generated %s | Page %d", report.ID, generated, pdf.PageNo())
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	})

	pdf.AddPage()
	drawTitle("Actual vs Budget: Recognized Revenue by Vessel",
		fmt.Sprintf("Window: %s | Variance policy: %s", report.Window, report.Policy))

	summaryRows := SummaryRows(report.Summary)
	summaryRows = append(summaryRows, []string{
		"Total",
		formatAmount(report.Totals.Actual),
		formatAmount(report.Totals.Budget),
		formatOptional(report.Totals.Variance),
	})
	colWidth := pageWidth / float64(len(SummaryHeaders))
	drawTable(SummaryHeaders, []float64{colWidth, colWidth, colWidth, colWidth}, summaryRows)

	detailWidths := []float64{24, 20, 24, 24, 24, 40, 30, 26, 32, 33}
	for _, ds := range []entity.DatasetReport{report.Actual, report.Budget} {
		pdf.AddPage()
		drawTitle(fmt.Sprintf("Filtered and Computed %s Data", titleCase(ds.Name)),
			fmt.Sprintf("Source: %s | Trips loaded: %d | Trips recognized: %d", ds.Source, ds.Loaded, ds.Recognized))
		drawTable(DetailHeaders, detailWidths, DetailRows(ds.Trips))
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// SummaryRows converte o resumo em linhas de texto; lados ausentes ficam vazios.
func SummaryRows(summary []entity.VesselSummary) [][]string {
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{
			s.Vessel,
			formatOptional(s.Actual),
			formatOptional(s.Budget),
			formatOptional(s.Variance),
		})
	}
	return rows
}

// DetailRows converte viagens alocadas em linhas de texto na ordem de DetailHeaders.
func DetailRows(trips []entity.AllocatedTrip) [][]string {
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, []string{
			t.Vessel,
			t.TripNo,
			t.LastDeparture.Format(entity.DateLayout),
			t.Departure.Format(entity.DateLayout),
			formatAmount(t.RecognizedTime),
			t.TripDetails,
			t.TotalLoadQuantity,
			formatNumber(t.TotalTripTime),
			formatAmount(t.RecognizedRevenue),
			formatAmount(t.TotalRevenue),
		})
	}
	return rows
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
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
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", sanitize(base), timestamp, ext)
	return filepath.Join(dir, filename), nil
}

var unsafeFilenameRegex = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func sanitize(base string) string {
	return unsafeFilenameRegex.ReplaceAllString(base, "_")
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatAmount(*v)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}

func isNumericColumn(header string) bool {
	switch header {
	case "Recognized Time", "Total Trip Time", "Recognized Revenue", "Total Revenue",
		"Recognized Revenue (Actual)", "Recognized Revenue (Budget)", "Variance":
		return true
	}
	return false
}

// truncate corta por runas para não quebrar sequências UTF-8 no meio.
func truncate(s string, width float64) string {
	maxChars := int(width / 1.8)
	runes := []rune(s)
	if maxChars > 3 && len(runes) > maxChars {
		return string(runes[:maxChars-3]) + "..."
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
