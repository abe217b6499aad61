package recognition

import (
	"testing"

	"github.com/diillson/voyage-revenue-go/internal/domain/entity"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeVariance_OuterUnion(t *testing.T) {
	actual := entity.VesselTotals{"V1": 5000, "V2": 1200, "V4": 0}
	budget := entity.VesselTotals{"V2": 1000, "V3": 800, "V4": 10}

	got := MergeVariance(actual, budget, PolicyStrict)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"V1", "V2", "V3", "V4"}, vesselsOf(got))

	v1 := got[0]
	require.NotNil(t, v1.Actual)
	assert.Equal(t, 5000.0, *v1.Actual)
	assert.Nil(t, v1.Budget)
	assert.Nil(t, v1.Variance)

	v2 := got[1]
	require.NotNil(t, v2.Variance)
	assert.Equal(t, 200.0, *v2.Variance)

	v3 := got[2]
	assert.Nil(t, v3.Actual)
	require.NotNil(t, v3.Budget)
	assert.Equal(t, 800.0, *v3.Budget)
	assert.Nil(t, v3.Variance)

	v4 := got[3]
	require.NotNil(t, v4.Actual, "zero revenue is not absence")
	assert.Equal(t, 0.0, *v4.Actual)
	require.NotNil(t, v4.Variance)
	assert.Equal(t, -10.0, *v4.Variance)
}

func TestMergeVariance_Cardinality(t *testing.T) {
	tests := []struct {
		name           string
		actual, budget entity.VesselTotals
		want           int
	}{
		{"both empty", entity.VesselTotals{}, entity.VesselTotals{}, 0},
		{"nil maps", nil, nil, 0},
		{"disjoint", entity.VesselTotals{"A": 1}, entity.VesselTotals{"B": 2}, 2},
		{"identical keys", entity.VesselTotals{"A": 1, "B": 2}, entity.VesselTotals{"A": 3, "B": 4}, 2},
		{"partial overlap", entity.VesselTotals{"A": 1, "B": 2}, entity.VesselTotals{"B": 3, "C": 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, MergeVariance(tt.actual, tt.budget, PolicyStrict), tt.want)
		})
	}
}

func TestMergeVariance_ZeroFillPolicy(t *testing.T) {
	actual := entity.VesselTotals{"V1": 5000}
	budget := entity.VesselTotals{"V2": 800}

	got := MergeVariance(actual, budget, PolicyZeroFill)

	require.Len(t, got, 2)
	assert.Nil(t, got[0].Budget, "absent side stays absent")
	require.NotNil(t, got[0].Variance)
	assert.Equal(t, 5000.0, *got[0].Variance)

	assert.Nil(t, got[1].Actual)
	require.NotNil(t, got[1].Variance)
	assert.Equal(t, -800.0, *got[1].Variance)
}

func TestParseVariancePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    VariancePolicy
		wantErr bool
	}{
		{"", PolicyStrict, false},
		{"strict", PolicyStrict, false},
		{" Zero-Fill ", PolicyZeroFill, false},
		{"zero", "", true},
	}

	for _, tt := range tests {
		got, err := ParseVariancePolicy(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, types.ErrUnknownVariancePolicy)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestSumSummary(t *testing.T) {
	summary := MergeVariance(
		entity.VesselTotals{"V1": 5000, "V2": 1200},
		entity.VesselTotals{"V2": 1000, "V3": 800},
		PolicyStrict,
	)

	got := SumSummary(summary)

	assert.Equal(t, 6200.0, got.Actual)
	assert.Equal(t, 1800.0, got.Budget)
	require.NotNil(t, got.Variance)
	assert.Equal(t, 200.0, *got.Variance, "only V2 has both sides")
}

func TestSumSummary_ZeroFill(t *testing.T) {
	summary := MergeVariance(
		entity.VesselTotals{"V1": 5000, "V2": 1200},
		entity.VesselTotals{"V2": 1000, "V3": 800},
		PolicyZeroFill,
	)

	got := SumSummary(summary)

	require.NotNil(t, got.Variance)
	assert.Equal(t, 4400.0, *got.Variance)
	assert.Equal(t, got.Actual-got.Budget, *got.Variance)
}

func TestSumSummary_StrictOneSidedVesselsHaveNoVariance(t *testing.T) {
	summary := MergeVariance(entity.VesselTotals{"V1": 5000}, entity.VesselTotals{"V3": 800}, PolicyStrict)
	require.Len(t, summary, 2)
	assert.Nil(t, summary[0].Variance)
	assert.Nil(t, summary[1].Variance)

	got := SumSummary(summary)

	assert.Equal(t, 5000.0, got.Actual)
	assert.Equal(t, 800.0, got.Budget)
	assert.Nil(t, got.Variance, "one-sided vessels must not produce a zero-filled total")
}

func TestSumSummary_Empty(t *testing.T) {
	got := SumSummary(nil)

	assert.Zero(t, got.Actual)
	assert.Zero(t, got.Budget)
	assert.Nil(t, got.Variance)
}

func TestPipeline_ActualOnlyVessel(t *testing.T) {
	actual := Allocate([]entity.TripRecord{
		trip("V1", "T1", day(2024, 3, 10), day(2024, 3, 20), 10, 3000),
		trip("V1", "T2", day(2024, 3, 21), day(2024, 3, 23), 2, 2000),
		trip("V1", "T3", day(2024, 2, 1), day(2024, 2, 15), 14, 9999),
	}, march)
	budget := Allocate([]entity.TripRecord{
		trip("V2", "B1", day(2024, 3, 10), day(2024, 3, 20), 10, 700),
	}, march)

	got := MergeVariance(AggregateByVessel(actual), AggregateByVessel(budget), PolicyStrict)

	require.Len(t, got, 2)
	assert.Equal(t, "V1", got[0].Vessel)
	require.NotNil(t, got[0].Actual)
	assert.Equal(t, 5000.0, *got[0].Actual)
	assert.Nil(t, got[0].Budget)
	assert.Nil(t, got[0].Variance)
}

func vesselsOf(summary []entity.VesselSummary) []string {
	out := make([]string, len(summary))
	for i, row := range summary {
		out[i] = row.Vessel
	}
	return out
}
