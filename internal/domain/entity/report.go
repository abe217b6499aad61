package entity

import "time"

// DatasetReport contém as viagens alocadas de um dataset.
type DatasetReport struct {
	Name       string          `json:"name"`
	Source     string          `json:"source"`
	Loaded     int             `json:"loaded"`
	Recognized int             `json:"recognized"`
	Trips      []AllocatedTrip `json:"trips"`
}

// RevenueReport agrega o resultado de uma execução: resumo por embarcação e detalhes por dataset.
type RevenueReport struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Window      ReportingWindow `json:"window"`
	Policy      string          `json:"variance_policy"`
	Summary     []VesselSummary `json:"summary"`
	Totals      SummaryTotals   `json:"totals"`
	Actual      DatasetReport   `json:"actual"`
	Budget      DatasetReport   `json:"budget"`
}
