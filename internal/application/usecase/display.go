package usecase

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
)

// renderSummaryTable monta a tabela "Summarized Results by Vessel" com a linha de totais.
func (uc *RevenueUseCase) renderSummaryTable(report entity.RevenueReport) string {
	table := uc.console.CreateTable()

	table.AddColumn("Vessel")
	table.AddColumn("Recognized Revenue\n(Actual)")
	table.AddColumn("Recognized Revenue\n(Budget)")
	table.AddColumn(fmt.Sprintf("Variance\n(%s)", report.Policy))

	for _, row := range report.Summary {
		table.AddRow(
			pterm.FgMagenta.Sprint(row.Vessel),
			formatOptional(row.Actual),
			formatOptional(row.Budget),
			formatVariance(row.Variance),
		)
	}

	table.AddRow(
		pterm.Bold.Sprint("Total"),
		pterm.Bold.Sprint(formatAmount(report.Totals.Actual)),
		pterm.Bold.Sprint(formatAmount(report.Totals.Budget)),
		formatVariance(report.Totals.Variance),
	)

	return table.Render()
}

// renderDetailTable monta a tabela de viagens filtradas e alocadas de um dataset.
func (uc *RevenueUseCase) renderDetailTable(trips []entity.AllocatedTrip) string {
	table := uc.console.CreateTable()

	for _, col := range []string{
		"Vessel", "Trip No", "Start Date", "End Date", "Recognized Time",
		"Trip Details", "Total Load Quantity", "Total Trip Time",
		"Recognized Revenue", "Total Revenue",
	} {
		table.AddColumn(col)
	}

	for _, t := range trips {
		table.AddRow(
			t.Vessel,
			t.TripNo,
			t.LastDeparture.Format(entity.DateLayout),
			t.Departure.Format(entity.DateLayout),
			formatAmount(t.RecognizedTime),
			t.TripDetails,
			t.TotalLoadQuantity,
			fmt.Sprintf("%g", t.TotalTripTime),
			formatAmount(t.RecognizedRevenue),
			formatAmount(t.TotalRevenue),
		)
	}

	return table.Render()
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatOptional(v *float64) string {
	if v == nil {
		return pterm.FgGray.Sprint("N/A")
	}
	return formatAmount(*v)
}

func formatVariance(v *float64) string {
	switch {
	case v == nil:
		return pterm.FgGray.Sprint("N/A")
	case *v > 0.005:
		return pterm.FgGreen.Sprintf("+%.2f", *v)
	case *v < -0.005:
		return pterm.FgRed.Sprintf("%.2f", *v)
	default:
		return pterm.FgYellow.Sprint("0.00")
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
