package member

import "fmt"

// SectionProperties holds the geometric properties of a rolled section,
// in the catalog units (mm-based).
type SectionProperties struct {
	AreaMM2 float64 `json:"area_mm2"`
	DepthMM float64 `json:"depth_mm"`
	IxMM4   float64 `json:"ix_mm4"`
	IyMM4   float64 `json:"iy_mm4"`
	ZxMM3   float64 `json:"zx_mm3"`
	ZyMM3   float64 `json:"zy_mm3"`
}

// SteelProperties holds the material grade values. Yield strength and
// modulus may be overridden by the user; density is catalog-sourced.
type SteelProperties struct {
	DensityKGM3 float64 `json:"density_kg_m3"`
	FyMPa       float64 `json:"fy_mpa"`
	E_GPa       float64 `json:"e_gpa"`
}

// SectionFromRecord builds typed section properties from a loosely keyed
// catalog record, rejecting records with missing or non-physical values.
func SectionFromRecord(rec map[string]float64) (SectionProperties, error) {
	var s SectionProperties
	fields := []struct {
		key string
		dst *float64
	}{
		{"area_mm2", &s.AreaMM2},
		{"depth_mm", &s.DepthMM},
		{"ix_mm4", &s.IxMM4},
		{"iy_mm4", &s.IyMM4},
		{"zx_mm3", &s.ZxMM3},
		{"zy_mm3", &s.ZyMM3},
	}
	for _, f := range fields {
		v, ok := rec[f.key]
		if !ok {
			return SectionProperties{}, fmt.Errorf("section record missing %q", f.key)
		}
		*f.dst = v
	}
	if s.AreaMM2 <= 0 || s.DepthMM <= 0 || s.IxMM4 <= 0 || s.ZxMM3 <= 0 {
		return SectionProperties{}, fmt.Errorf("section record has non-positive core properties")
	}
	return s, nil
}

// SteelFromRecord builds typed steel properties from a loosely keyed
// catalog record.
func SteelFromRecord(rec map[string]float64) (SteelProperties, error) {
	var s SteelProperties
	fields := []struct {
		key string
		dst *float64
	}{
		{"density_kg_m3", &s.DensityKGM3},
		{"fy_mpa", &s.FyMPa},
		{"e_gpa", &s.E_GPa},
	}
	for _, f := range fields {
		v, ok := rec[f.key]
		if !ok {
			return SteelProperties{}, fmt.Errorf("steel record missing %q", f.key)
		}
		*f.dst = v
	}
	if s.FyMPa <= 0 || s.E_GPa <= 0 {
		return SteelProperties{}, fmt.Errorf("steel record has non-positive strength or modulus")
	}
	return s, nil
}
