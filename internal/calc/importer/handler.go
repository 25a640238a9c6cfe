package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	analysis "Girder/internal/calc/analysis"
	loadcases "Girder/internal/calc/loadcases"
	member "Girder/internal/calc/member"
	catalog "Girder/internal/catalog"
)

// Handler runs one analysis per spreadsheet row, resolving section and
// steel properties from the catalog by designation. Rows that fail to
// parse, resolve or analyse are skipped.
type Handler struct {
	Catalog catalog.Catalog
}

type ImportResult struct {
	Count   int               `json:"count"`
	Results []analysis.Result `json:"results"`
}

func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []analysis.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseMemberRow(rows[i])
		if err != nil {
			continue
		}
		entry, err := h.Catalog.Lookup(r.Context(), input.Member.Designation)
		if err != nil {
			continue
		}
		input.Section = entry.Section
		input.Steel = entry.Steel

		res, err := analysis.Run(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// Expected columns: designation, length_m, storey, total_storeys,
// tributary_width_m, roof occupancy/snow/wind/maintenance (kPa),
// floor occupancy/seismic (kPa), floor dead, slab self-weight (kPa).
func parseMemberRow(row []string) (analysis.Input, error) {
	if len(row) < 13 {
		return analysis.Input{}, fmt.Errorf("bad row")
	}

	vals := make([]float64, 0, 12)
	for _, cell := range row[1:13] {
		v, err := toFloat(cell)
		if err != nil {
			return analysis.Input{}, err
		}
		vals = append(vals, v)
	}

	return analysis.Input{
		Member: member.Descriptor{
			Type:            "beam",
			Designation:     row[0],
			LengthM:         vals[0],
			Storey:          int(vals[1]),
			TotalStoreys:    int(vals[2]),
			TributaryWidthM: vals[3],
		},
		Live: loadcases.LiveLoads{
			Roof: loadcases.RoofLive{
				OccupancyKPa:   vals[4],
				SnowKPa:        vals[5],
				WindKPa:        vals[6],
				MaintenanceKPa: vals[7],
			},
			Floor: loadcases.FloorLive{
				OccupancyKPa: vals[8],
				SeismicKPa:   vals[9],
			},
		},
		Dead: loadcases.DeadLoads{
			FloorDeadKPa:      vals[10],
			SlabSelfWeightKPa: vals[11],
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
