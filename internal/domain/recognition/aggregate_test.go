package recognition

import (
	"math/rand"
	"testing"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func allocated(vessel string, revenue float64) entity.AllocatedTrip {
	return entity.AllocatedTrip{
		TripRecord:        entity.TripRecord{Vessel: vessel},
		RecognizedRevenue: revenue,
	}
}

func TestAggregateByVessel(t *testing.T) {
	trips := []entity.AllocatedTrip{
		allocated("V1", 1000),
		allocated("V2", 250.5),
		allocated("V1", 600),
		allocated("V2", -50.5),
		allocated("V3", 0),
	}

	got := AggregateByVessel(trips)

	assert.Len(t, got, 3)
	assert.Equal(t, 1600.0, got["V1"])
	assert.Equal(t, 200.0, got["V2"])
	v3, ok := got["V3"]
	assert.True(t, ok, "vessel with zero revenue must still appear")
	assert.Equal(t, 0.0, v3)
	_, ok = got["V4"]
	assert.False(t, ok)
}

func TestAggregateByVessel_Empty(t *testing.T) {
	assert.Empty(t, AggregateByVessel(nil))
}

func TestAggregateByVessel_OrderIndependent(t *testing.T) {
	vessels := []string{"V1", "V2", "V3", "V4"}
	rng := rand.New(rand.NewSource(7))

	trips := make([]entity.AllocatedTrip, 0, 200)
	for i := 0; i < 200; i++ {
		revenue := Round2(rng.Float64()*20000 - 5000)
		trips = append(trips, allocated(vessels[i%len(vessels)], revenue))
	}
	want := AggregateByVessel(trips)

	for round := 0; round < 5; round++ {
		shuffled := append([]entity.AllocatedTrip(nil), trips...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := AggregateByVessel(shuffled)

		assert.Len(t, got, len(want))
		for vessel, sum := range want {
			assert.InDelta(t, sum, got[vessel], 1e-6, vessel)
		}
	}
}

func TestAggregateByVessel_Deterministic(t *testing.T) {
	trips := []entity.AllocatedTrip{
		allocated("V1", 0.1),
		allocated("V1", 0.2),
		allocated("V1", 0.3),
	}

	first := AggregateByVessel(trips)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AggregateByVessel(trips))
	}
}
