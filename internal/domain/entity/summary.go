package entity

// VesselTotals mapeia a chave da embarcação para a soma da receita reconhecida.
type VesselTotals map[string]float64

// VesselSummary compara actual e budget de uma embarcação.
// Um ponteiro nil significa que não há dados daquele lado (diferente de receita zero).
type VesselSummary struct {
	Vessel   string   `json:"vessel"`
	Actual   *float64 `json:"recognized_revenue_actual"`
	Budget   *float64 `json:"recognized_revenue_budget"`
	Variance *float64 `json:"variance"`
}

// SummaryTotals é a linha de totais do resumo.
// Variance soma apenas as linhas que têm variância; nil quando nenhuma tem.
type SummaryTotals struct {
	Actual   float64  `json:"actual"`
	Budget   float64  `json:"budget"`
	Variance *float64 `json:"variance"`
}
