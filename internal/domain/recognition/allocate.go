package recognition

import (
	"math"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const secondsPerDay = 24 * 60 * 60

// Allocate aplica Classify a cada viagem e calcula o tempo e a receita reconhecidos.
// Viagens sem sobreposição são descartadas; a ordem das demais é preservada.
func Allocate(records []entity.TripRecord, window entity.ReportingWindow) []entity.AllocatedTrip {
	allocated := make([]entity.AllocatedTrip, 0, len(records))
	for _, rec := range records {
		trip, ok := AllocateTrip(rec, window)
		if !ok {
			continue
		}
		allocated = append(allocated, trip)
	}
	return allocated
}

// AllocateTrip aloca uma única viagem. O segundo retorno é false quando a viagem
// não intersecta a janela.
func AllocateTrip(rec entity.TripRecord, window entity.ReportingWindow) (entity.AllocatedTrip, bool) {
	overlap, overlapCase, ok := Classify(rec.LastDeparture, rec.Departure, window.Start, window.End)
	if !ok {
		return entity.AllocatedTrip{}, false
	}

	// Segundos/86400 preserva a fração do dia.
	recognizedDays := overlap.Seconds() / secondsPerDay
	revenue := ProrateRevenue(rec.TotalRevenue, recognizedDays, rec.TotalTripTime)

	trip := entity.AllocatedTrip{
		TripRecord:        rec,
		Case:              overlapCase,
		RecognizedTime:    Round2(recognizedDays),
		RecognizedRevenue: Round2(revenue),
	}
	trip.TotalRevenue = Round2(rec.TotalRevenue)

	return trip, true
}

// ProrateRevenue retorna totalRevenue * (recognizedDays / totalTripTime).
// Uma viagem com totalTripTime zero reconhece receita zero.
func ProrateRevenue(totalRevenue, recognizedDays, totalTripTime float64) float64 {
	if totalTripTime == 0 {
		return 0
	}
	return totalRevenue * (recognizedDays / totalTripTime)
}

// Round2 arredonda para 2 casas decimais, metade para o par.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	rounded, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return rounded
}
