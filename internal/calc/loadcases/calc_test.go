package loadcases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	member "Girder/internal/calc/member"
)

var (
	testLive = LiveLoads{
		Roof:  RoofLive{OccupancyKPa: 0.25, SnowKPa: 0.9, WindKPa: 0.6, MaintenanceKPa: 0.25},
		Floor: FloorLive{OccupancyKPa: 2.5, SeismicKPa: 0.5},
	}
	testDead = DeadLoads{FloorDeadKPa: 1.5, SlabSelfWeightKPa: 2.5}
)

func threeStoreyMember() member.Descriptor {
	return member.Descriptor{Type: "beam", LengthM: 6, Storey: 1, TotalStoreys: 3, TributaryWidthM: 3}
}

func TestGenerateThreeStoreys(t *testing.T) {
	records := Generate(threeStoreyMember(), testLive, testDead)
	require.Len(t, records, 3)

	// Ascending storey order, storey 1 first.
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Storey)
	}

	// gArea = 4 kPa -> own dead line load 12000 N/m at 3 m tributary width.
	assert.InDelta(t, 12000, records[2].G, 1e-9)
	assert.InDelta(t, 24000, records[1].G, 1e-9)
	assert.InDelta(t, 36000, records[0].G, 1e-9)

	// Roof live: (0.25+0.9+0.6+0.25) kPa * 3 m = 6000 N/m.
	assert.InDelta(t, 6000, records[2].Q, 1e-9)
	// Floor live: (2.5+0.5) kPa * 3 m = 9000 N/m.
	assert.InDelta(t, 9000, records[1].Q, 1e-9)
	assert.InDelta(t, 9000, records[0].Q, 1e-9)

	// Combinations at storey 1.
	assert.InDelta(t, 1.35*36000, records[0].ULS1, 1e-9)
	assert.InDelta(t, 1.2*36000+1.5*9000, records[0].ULS2, 1e-9)
	assert.InDelta(t, 36000, records[0].SLS1, 1e-9)
	assert.InDelta(t, 0.7*9000, records[0].SLS2, 1e-9)
	assert.InDelta(t, 36000+0.7*9000, records[0].SLS3, 1e-9)
}

func TestCumulativeDeadLoadInvariant(t *testing.T) {
	m := threeStoreyMember()
	m.TotalStoreys = 5
	records := Generate(m, testLive, testDead)
	require.Len(t, records, 5)

	own := (testDead.FloorDeadKPa + testDead.SlabSelfWeightKPa) * 1000 * m.TributaryWidthM
	for k, rec := range records {
		above := float64(m.TotalStoreys-rec.Storey) * own
		assert.InDelta(t, own+above, rec.G, 1e-9, "storey %d", k+1)
	}
}

func TestQuasiPermanentReduction(t *testing.T) {
	records := Generate(threeStoreyMember(), testLive, testDead)
	for _, rec := range records {
		assert.InDelta(t, 0.7*rec.Q, rec.Qs, 1e-9)
		assert.InDelta(t, rec.G+rec.Qs, rec.SLS3, 1e-9)
	}
}

func TestSingleStoreyUsesRoofLoads(t *testing.T) {
	m := threeStoreyMember()
	m.TotalStoreys = 1
	records := Generate(m, testLive, testDead)
	require.Len(t, records, 1)
	assert.InDelta(t, 6000, records[0].Q, 1e-9)
	assert.InDelta(t, 12000, records[0].G, 1e-9)
}

func TestTributaryWidthMonotonic(t *testing.T) {
	narrow := threeStoreyMember()
	wide := threeStoreyMember()
	wide.TributaryWidthM = 4.5

	a := Generate(narrow, testLive, testDead)
	b := Generate(wide, testLive, testDead)
	for i := range a {
		assert.GreaterOrEqual(t, b[i].G, a[i].G)
		assert.GreaterOrEqual(t, b[i].Q, a[i].Q)
		assert.GreaterOrEqual(t, b[i].ULS1, a[i].ULS1)
		assert.GreaterOrEqual(t, b[i].ULS2, a[i].ULS2)
	}
}

func TestZeroTributaryWidth(t *testing.T) {
	m := threeStoreyMember()
	m.TributaryWidthM = 0
	for _, rec := range Generate(m, testLive, testDead) {
		assert.Zero(t, rec.G)
		assert.Zero(t, rec.Q)
		assert.Zero(t, rec.ULS2)
	}
}
