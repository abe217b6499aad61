package recognition

import "github.com/diillson/voyage-revenue-go/internal/domain/entity"

// AggregateByVessel soma a receita reconhecida por embarcação.
// A soma é sequencial na ordem de entrada; embarcações sem viagens não aparecem.
func AggregateByVessel(trips []entity.AllocatedTrip) entity.VesselTotals {
	totals := make(entity.VesselTotals)
	for _, trip := range trips {
		totals[trip.Vessel] += trip.RecognizedRevenue
	}
	return totals
}
