package entity

import "time"

// TripRecord representa uma viagem lida de um dataset (actual ou budget).
// LastDeparture normalmente precede Departure, mas isso não é garantido pela entrada.
type TripRecord struct {
	Vessel        string    `json:"vessel"`
	TripNo        string    `json:"trip_no"`
	LastDeparture time.Time `json:"last_departure"`
	Departure     time.Time `json:"departure"`
	TotalTripTime float64   `json:"total_trip_time"`
	TotalRevenue  float64   `json:"total_revenue"`

	// Campos opacos, repassados sem interpretação.
	TripDetails       string `json:"trip_details,omitempty"`
	TotalLoadQuantity string `json:"total_load_quantity,omitempty"`
}

// Span retorna a duração da própria viagem (Departure - LastDeparture).
func (t TripRecord) Span() time.Duration {
	return t.Departure.Sub(t.LastDeparture)
}

// OverlapCase identifica como o intervalo da viagem intersecta a janela de reporte.
type OverlapCase string

const (
	CaseNone     OverlapCase = ""
	CaseInside   OverlapCase = "A" // viagem inteira dentro da janela
	CaseTrailing OverlapCase = "B" // começa dentro, termina depois da janela
	CaseLeading  OverlapCase = "C" // começa antes, termina dentro da janela
	CaseSpanning OverlapCase = "D" // cobre a janela inteira
)

// AllocatedTrip é uma TripRecord com o tempo e a receita reconhecidos na janela.
// RecognizedTime, RecognizedRevenue e TotalRevenue estão arredondados a 2 casas.
type AllocatedTrip struct {
	TripRecord
	Case              OverlapCase `json:"case"`
	RecognizedTime    float64     `json:"recognized_time"`
	RecognizedRevenue float64     `json:"recognized_revenue"`
}
