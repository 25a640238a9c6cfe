package designcheck

import (
	"fmt"
	"math"

	envelope "Girder/internal/calc/envelope"
	member "Girder/internal/calc/member"
)

// CapacityFactor is the resistance reduction factor applied to nominal
// bending and shear capacity.
const CapacityFactor = 0.9

// DeflectionLimitRatio gives the serviceability limit as span/ratio.
const DeflectionLimitRatio = 250.0

type Status string

const (
	Pass Status = "PASS"
	Fail Status = "FAIL"
)

// MissingStoreyError reports that no envelope row exists for the storey
// the member sits on. This is a caller/input consistency error.
type MissingStoreyError struct {
	Storey int
}

func (e *MissingStoreyError) Error() string {
	return fmt.Sprintf("no load case data for storey %d", e.Storey)
}

// DegeneracyError reports a section or material quantity whose value
// would drive a check into NaN or Inf instead of a number.
type DegeneracyError struct {
	Quantity string
	Value    float64
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("degenerate %s (%g) makes checks undefined", e.Quantity, e.Value)
}

// MomentCheck is the bending capacity check at midspan.
type MomentCheck struct {
	DemandKNM   float64 `json:"demand_knm"`
	CapacityKNM float64 `json:"capacity_knm"`
	Utilization float64 `json:"utilization"`
	Status      Status  `json:"status"`
}

// ShearCheck is the shear capacity check at the supports, using the gross
// cross-sectional area as the shear area.
type ShearCheck struct {
	DemandKN    float64 `json:"demand_kn"`
	CapacityKN  float64 `json:"capacity_kn"`
	Utilization float64 `json:"utilization"`
	Status      Status  `json:"status"`
}

// DeflectionCheck compares midspan deflection under the quasi-permanent
// combination against span/250.
type DeflectionCheck struct {
	DeflectionMM float64 `json:"deflection_mm"`
	LimitMM      float64 `json:"limit_mm"`
	Utilization  float64 `json:"utilization"`
	Status       Status  `json:"status"`
}

// SlendernessCheck is informational only; no code limit is applied.
type SlendernessCheck struct {
	Ratio       float64 `json:"ratio"`
	RadiusGyrMM float64 `json:"radius_gyr_mm"`
}

type Result struct {
	Bending     MomentCheck      `json:"bending"`
	Shear       ShearCheck       `json:"shear"`
	Deflection  DeflectionCheck  `json:"deflection"`
	Slenderness SlendernessCheck `json:"slenderness"`
}

// Evaluate runs the capacity checks for the member's own storey against
// the envelopes produced for it.
func Evaluate(m member.Descriptor, section member.SectionProperties, steel member.SteelProperties, envelopes []envelope.StoreyEnvelope) (Result, error) {
	var row *envelope.StoreyEnvelope
	for i := range envelopes {
		if envelopes[i].Storey == m.Storey {
			row = &envelopes[i]
			break
		}
	}
	if row == nil {
		return Result{}, &MissingStoreyError{Storey: m.Storey}
	}

	// Convert to SI base units.
	fy := steel.FyMPa * 1e6              // Pa
	modE := steel.E_GPa * 1e9            // Pa
	zx := section.ZxMM3 / 1e9            // m³
	ix := section.IxMM4 / 1e12           // m⁴
	av := section.AreaMM2 / 1e6          // m², gross area taken as shear area
	span := m.LengthM

	if av <= 0 {
		return Result{}, &DegeneracyError{Quantity: "shear area", Value: section.AreaMM2}
	}
	if ix <= 0 {
		return Result{}, &DegeneracyError{Quantity: "moment of inertia", Value: section.IxMM4}
	}
	if zx <= 0 {
		return Result{}, &DegeneracyError{Quantity: "section modulus", Value: section.ZxMM3}
	}

	mMaxULS := math.Max(row.ULS1.MmaxKNM, row.ULS2.MmaxKNM) * 1000.0 // N*m
	vMaxULS := math.Max(row.ULS1.VmaxKN, row.ULS2.VmaxKN) * 1000.0   // N

	var res Result

	// Bending: Md <= 0.9 * Z * fy
	mCap := CapacityFactor * zx * fy
	res.Bending = MomentCheck{
		DemandKNM:   mMaxULS / 1000.0,
		CapacityKNM: mCap / 1000.0,
		Utilization: mMaxULS / mCap,
		Status:      verdict(mMaxULS <= mCap),
	}

	// Shear: Vd <= 0.9 * Av * fy / sqrt(3)
	vCap := CapacityFactor * av * fy / math.Sqrt(3.0)
	res.Shear = ShearCheck{
		DemandKN:    vMaxULS / 1000.0,
		CapacityKN:  vCap / 1000.0,
		Utilization: vMaxULS / vCap,
		Status:      verdict(vMaxULS <= vCap),
	}

	// Deflection: recover the SLS3 line load from its midspan moment,
	// then delta = 5wL⁴/384EI against span/250.
	wSLS := row.SLS3.MmaxKNM * 8000.0 / (span * span) // N/m
	delta := 5.0 * wSLS * math.Pow(span, 4) / (384.0 * modE * ix)
	limit := span / DeflectionLimitRatio
	res.Deflection = DeflectionCheck{
		DeflectionMM: delta * 1000.0,
		LimitMM:      limit * 1000.0,
		Utilization:  delta / limit,
		Status:       verdict(delta <= limit),
	}

	rg := math.Sqrt(ix / av)
	res.Slenderness = SlendernessCheck{
		Ratio:       span / rg,
		RadiusGyrMM: rg * 1000.0,
	}

	return res, nil
}

func verdict(ok bool) Status {
	if ok {
		return Pass
	}
	return Fail
}
