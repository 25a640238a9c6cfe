package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorValidate(t *testing.T) {
	valid := Descriptor{Type: "beam", LengthM: 6, Storey: 2, TotalStoreys: 3, TributaryWidthM: 3}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Descriptor)
	}{
		{"zero length", func(d *Descriptor) { d.LengthM = 0 }},
		{"negative length", func(d *Descriptor) { d.LengthM = -2 }},
		{"no storeys", func(d *Descriptor) { d.TotalStoreys = 0 }},
		{"storey below range", func(d *Descriptor) { d.Storey = 0 }},
		{"storey above range", func(d *Descriptor) { d.Storey = 4 }},
		{"negative tributary width", func(d *Descriptor) { d.TributaryWidthM = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			var geomErr *GeometryError
			assert.ErrorAs(t, err, &geomErr)
		})
	}
}

func TestIsRoof(t *testing.T) {
	assert.True(t, Descriptor{Storey: 3, TotalStoreys: 3}.IsRoof())
	assert.False(t, Descriptor{Storey: 1, TotalStoreys: 3}.IsRoof())
	assert.True(t, Descriptor{Storey: 1, TotalStoreys: 1}.IsRoof())
}

func TestSectionFromRecord(t *testing.T) {
	rec := map[string]float64{
		"area_mm2": 2850, "depth_mm": 200,
		"ix_mm4": 19.43e6, "iy_mm4": 1.42e6,
		"zx_mm3": 194.3e3, "zy_mm3": 28.5e3,
	}
	s, err := SectionFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, 2850.0, s.AreaMM2)
	assert.Equal(t, 194.3e3, s.ZxMM3)

	delete(rec, "ix_mm4")
	_, err = SectionFromRecord(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ix_mm4")

	rec["ix_mm4"] = -1
	_, err = SectionFromRecord(rec)
	require.Error(t, err)
}

func TestSteelFromRecord(t *testing.T) {
	rec := map[string]float64{"density_kg_m3": 7850, "fy_mpa": 235, "e_gpa": 210}
	s, err := SteelFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, 235.0, s.FyMPa)

	rec["fy_mpa"] = 0
	_, err = SteelFromRecord(rec)
	require.Error(t, err)

	delete(rec, "e_gpa")
	_, err = SteelFromRecord(rec)
	require.Error(t, err)
}
