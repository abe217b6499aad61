package recognition

import (
	"math"
	"testing"
	"time"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march = entity.ReportingWindow{Start: day(2024, 3, 1), End: day(2024, 3, 31)}

func trip(vessel, tripNo string, ld, dep time.Time, totalTime, revenue float64) entity.TripRecord {
	return entity.TripRecord{
		Vessel:            vessel,
		TripNo:            tripNo,
		LastDeparture:     ld,
		Departure:         dep,
		TotalTripTime:     totalTime,
		TotalRevenue:      revenue,
		TripDetails:       "SGP-RTM",
		TotalLoadQuantity: "42000",
	}
}

func TestAllocateTrip_Scenarios(t *testing.T) {
	t.Run("trip fully inside window", func(t *testing.T) {
		got, ok := AllocateTrip(trip("V1", "T1", day(2024, 3, 10), day(2024, 3, 20), 10, 1000), march)

		require.True(t, ok)
		assert.Equal(t, entity.CaseInside, got.Case)
		assert.Equal(t, 10.0, got.RecognizedTime)
		assert.Equal(t, 1000.0, got.RecognizedRevenue)
		assert.Equal(t, 1000.0, got.TotalRevenue)
	})

	t.Run("trip ends after window", func(t *testing.T) {
		got, ok := AllocateTrip(trip("V1", "T2", day(2024, 3, 25), day(2024, 4, 5), 11, 1100), march)

		require.True(t, ok)
		assert.Equal(t, entity.CaseTrailing, got.Case)
		assert.Equal(t, 6.0, got.RecognizedTime)
		assert.Equal(t, 600.0, got.RecognizedRevenue)
	})

	t.Run("trip starts before window", func(t *testing.T) {
		got, ok := AllocateTrip(trip("V2", "T3", day(2024, 2, 20), day(2024, 3, 4), 13, 1300), march)

		require.True(t, ok)
		assert.Equal(t, entity.CaseLeading, got.Case)
		assert.Equal(t, 3.0, got.RecognizedTime)
		assert.Equal(t, 300.0, got.RecognizedRevenue)
	})

	t.Run("trip spans window", func(t *testing.T) {
		got, ok := AllocateTrip(trip("V3", "T4", day(2024, 2, 1), day(2024, 4, 10), 69, 6900), march)

		require.True(t, ok)
		assert.Equal(t, entity.CaseSpanning, got.Case)
		assert.Equal(t, 30.0, got.RecognizedTime)
		assert.Equal(t, 3000.0, got.RecognizedRevenue)
	})

	t.Run("trip entirely before window", func(t *testing.T) {
		_, ok := AllocateTrip(trip("V1", "T5", day(2024, 2, 1), day(2024, 2, 15), 14, 1400), march)
		assert.False(t, ok)
	})

	t.Run("passthrough fields are kept", func(t *testing.T) {
		got, ok := AllocateTrip(trip("V1", "T1", day(2024, 3, 10), day(2024, 3, 20), 10, 1000), march)

		require.True(t, ok)
		assert.Equal(t, "V1", got.Vessel)
		assert.Equal(t, "T1", got.TripNo)
		assert.Equal(t, "SGP-RTM", got.TripDetails)
		assert.Equal(t, "42000", got.TotalLoadQuantity)
		assert.Equal(t, day(2024, 3, 10), got.LastDeparture)
		assert.Equal(t, day(2024, 3, 20), got.Departure)
	})
}

func TestAllocateTrip_CaseARecognizesFullSpan(t *testing.T) {
	ld := time.Date(2024, 3, 2, 6, 30, 0, 0, time.UTC)
	dep := time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)
	rec := trip("V1", "T1", ld, dep, 7.48, 748)

	got, ok := AllocateTrip(rec, march)

	require.True(t, ok)
	assert.Equal(t, entity.CaseInside, got.Case)
	assert.Equal(t, Round2(rec.Span().Hours()/24), got.RecognizedTime)
	assert.InDelta(t, 747.92, got.RecognizedRevenue, 0.005)
}

func TestAllocateTrip_ZeroTripTime(t *testing.T) {
	for _, revenue := range []float64{1000, -250.5, 0, 1e9} {
		got, ok := AllocateTrip(trip("V1", "T1", day(2024, 3, 10), day(2024, 3, 20), 0, revenue), march)

		require.True(t, ok)
		assert.Equal(t, 10.0, got.RecognizedTime)
		assert.Equal(t, 0.0, got.RecognizedRevenue, "revenue %v", revenue)
		assert.False(t, math.IsNaN(got.RecognizedRevenue))
	}
}

func TestAllocateTrip_NegativeRevenueKeepsSign(t *testing.T) {
	got, ok := AllocateTrip(trip("V1", "T2", day(2024, 3, 25), day(2024, 4, 5), 11, -1100), march)

	require.True(t, ok)
	assert.Equal(t, -600.0, got.RecognizedRevenue)
}

func TestAllocateTrip_ProportionalityBound(t *testing.T) {
	records := []entity.TripRecord{
		trip("V1", "T1", day(2024, 3, 10), day(2024, 3, 20), 10, 1000),
		trip("V1", "T2", day(2024, 3, 25), day(2024, 4, 5), 11, -1100),
		trip("V2", "T3", day(2024, 2, 20), day(2024, 3, 4), 13, 777.77),
		trip("V3", "T4", day(2024, 2, 1), day(2024, 4, 10), 69, 123456.78),
		trip("V4", "T5", time.Date(2024, 3, 30, 8, 0, 0, 0, time.UTC), day(2024, 4, 2), 2.67, 333.33),
	}

	for _, rec := range records {
		got, ok := AllocateTrip(rec, march)
		require.True(t, ok, rec.TripNo)

		spanDays := rec.Span().Hours() / 24
		assert.GreaterOrEqual(t, got.RecognizedTime, 0.0, rec.TripNo)
		assert.LessOrEqual(t, got.RecognizedTime, Round2(spanDays), rec.TripNo)
		assert.LessOrEqual(t, math.Abs(got.RecognizedRevenue), math.Abs(rec.TotalRevenue)+0.005, rec.TripNo)
		if rec.TotalRevenue != 0 && got.RecognizedRevenue != 0 {
			assert.Equal(t, math.Signbit(rec.TotalRevenue), math.Signbit(got.RecognizedRevenue), rec.TripNo)
		}
	}
}

func TestAllocate(t *testing.T) {
	records := []entity.TripRecord{
		trip("V1", "T1", day(2024, 3, 10), day(2024, 3, 20), 10, 1000),
		trip("V1", "T0", day(2024, 2, 1), day(2024, 2, 15), 14, 1400),
		trip("V2", "T2", day(2024, 3, 25), day(2024, 4, 5), 11, 1100),
		trip("V3", "T3", day(2024, 3, 1), day(2024, 3, 10), 9, 900),
		trip("V4", "T4", day(2024, 3, 20), day(2024, 3, 31), 11, 1100),
	}
	original := append([]entity.TripRecord(nil), records...)

	got := Allocate(records, march)

	require.Len(t, got, 2)
	assert.Equal(t, "T1", got[0].TripNo)
	assert.Equal(t, "T2", got[1].TripNo)
	assert.Equal(t, original, records, "input must not be mutated")
}

func TestAllocate_Empty(t *testing.T) {
	got := Allocate(nil, march)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAllocate_InvalidWindowRecognizesNothing(t *testing.T) {
	records := []entity.TripRecord{
		trip("V1", "T1", day(2024, 3, 10), day(2024, 3, 20), 10, 1000),
	}
	inverted := entity.ReportingWindow{Start: march.End, End: march.Start}

	assert.Empty(t, Allocate(records, inverted))
}

func TestProrateRevenue(t *testing.T) {
	assert.Equal(t, 0.0, ProrateRevenue(1000, 5, 0))
	assert.Equal(t, 500.0, ProrateRevenue(1000, 5, 10))
	assert.Equal(t, -500.0, ProrateRevenue(-1000, 5, 10))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10, 10},
		{1.234, 1.23},
		{1.236, 1.24},
		{-1.234, -1.23},
		{2.345, 2.34},
		{2.355, 2.36},
		{600.0000000000001, 600},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}

	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
}

// Round2 arredonda a representação decimal mais curta do float, não o valor binário:
// 2.675 é 2.67499999... em binário, mas aqui vira 2.68 (metade para o par).
func TestRound2_HalfEvenOnDecimalRepresentation(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.675, 2.68},
		{-2.675, -2.68},
		{2.665, 2.66},
		{0.125, 0.12},
		{0.135, 0.14},
		{1100.005, 1100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}
