package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemberRow(t *testing.T) {
	row := []string{"IPE 400", "6.0", "1", "3", "3.0", "0.25", "0.9", "0.6", "0.25", "2.5", "0.5", "1.5", "2.5"}
	input, err := parseMemberRow(row)
	require.NoError(t, err)

	assert.Equal(t, "IPE 400", input.Member.Designation)
	assert.Equal(t, 6.0, input.Member.LengthM)
	assert.Equal(t, 1, input.Member.Storey)
	assert.Equal(t, 3, input.Member.TotalStoreys)
	assert.Equal(t, 3.0, input.Member.TributaryWidthM)
	assert.Equal(t, 0.9, input.Live.Roof.SnowKPa)
	assert.Equal(t, 2.5, input.Live.Floor.OccupancyKPa)
	assert.Equal(t, 0.5, input.Live.Floor.SeismicKPa)
	assert.Equal(t, 1.5, input.Dead.FloorDeadKPa)
	assert.Equal(t, 2.5, input.Dead.SlabSelfWeightKPa)
}

func TestParseMemberRowRejectsBadRows(t *testing.T) {
	_, err := parseMemberRow([]string{"IPE 400", "6.0"})
	require.Error(t, err)

	row := []string{"IPE 400", "abc", "1", "3", "3.0", "0", "0", "0", "0", "0", "0", "1", "1"}
	_, err = parseMemberRow(row)
	require.Error(t, err)
}
