package loadcases

import (
	member "Girder/internal/calc/member"
)

// Load combination factors (EC0-style gravity combinations).
const (
	FactorULS1Dead  = 1.35
	FactorULS2Dead  = 1.2
	FactorULS2Live  = 1.5
	FactorQuasiPerm = 0.7 // serviceability reduction on live load
)

// RoofLive holds the roof-level variable area loads, kPa each.
type RoofLive struct {
	OccupancyKPa   float64 `json:"occupancy_kpa"`
	SnowKPa        float64 `json:"snow_kpa"`
	WindKPa        float64 `json:"wind_kpa"`
	MaintenanceKPa float64 `json:"maintenance_kpa"`
}

// FloorLive holds the intermediate-floor variable area loads, kPa each.
type FloorLive struct {
	OccupancyKPa float64 `json:"occupancy_kpa"`
	SeismicKPa   float64 `json:"seismic_kpa"`
}

type LiveLoads struct {
	Roof  RoofLive  `json:"roof"`
	Floor FloorLive `json:"floor"`
}

type DeadLoads struct {
	FloorDeadKPa      float64 `json:"floor_dead_kpa"`
	SlabSelfWeightKPa float64 `json:"slab_self_weight_kpa"`
}

// StoreyLoadRecord holds the line loads for one storey, all in N/m.
// G is cumulative: each storey carries the dead load of every storey above
// it, so G at storey k equals the storey's own dead line load plus the sum
// of the own dead line loads of storeys k+1..N.
type StoreyLoadRecord struct {
	Storey int     `json:"storey"`
	G      float64 `json:"g_n_m"`
	Q      float64 `json:"q_n_m"`
	Qs     float64 `json:"qs_n_m"`
	ULS1   float64 `json:"uls1_n_m"`
	ULS2   float64 `json:"uls2_n_m"`
	SLS1   float64 `json:"sls1_n_m"`
	SLS2   float64 `json:"sls2_n_m"`
	SLS3   float64 `json:"sls3_n_m"`
}

// Generate walks the stack from the roof down to storey 1, accumulating
// dead load on the way, and returns one record per storey sorted
// ascending by storey number. The caller guarantees TotalStoreys >= 1.
func Generate(m member.Descriptor, live LiveLoads, dead DeadLoads) []StoreyLoadRecord {
	n := m.TotalStoreys
	records := make([]StoreyLoadRecord, n)

	// kPa -> N/m², identical at every storey
	gArea := (dead.FloorDeadKPa + dead.SlabSelfWeightKPa) * 1000.0
	gOwn := gArea * m.TributaryWidthM

	cumG := 0.0
	for storey := n; storey >= 1; storey-- {
		var qArea float64
		if storey == n {
			qArea = (live.Roof.OccupancyKPa + live.Roof.SnowKPa + live.Roof.WindKPa + live.Roof.MaintenanceKPa) * 1000.0
		} else {
			qArea = (live.Floor.OccupancyKPa + live.Floor.SeismicKPa) * 1000.0
		}
		q := qArea * m.TributaryWidthM
		qs := FactorQuasiPerm * q
		cumG += gOwn

		records[storey-1] = StoreyLoadRecord{
			Storey: storey,
			G:      cumG,
			Q:      q,
			Qs:     qs,
			ULS1:   FactorULS1Dead * cumG,
			ULS2:   FactorULS2Dead*cumG + FactorULS2Live*q,
			SLS1:   cumG,
			SLS2:   qs,
			SLS3:   cumG + qs,
		}
	}
	return records
}
