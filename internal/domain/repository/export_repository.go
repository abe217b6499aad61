package repository

import (
	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
)

type ExportRepository interface {
	// ExportReportToCSV gera um arquivo por tabela (summary, actual, budget).
	ExportReportToCSV(report entity.RevenueReport, filename, outputDir string) ([]string, error)
	ExportReportToJSON(report entity.RevenueReport, filename, outputDir string) (string, error)
	ExportReportToPDF(report entity.RevenueReport, filename, outputDir string) (string, error)
}
