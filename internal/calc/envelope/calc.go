package envelope

import (
	"math"

	loadcases "Girder/internal/calc/loadcases"
)

// CaseEnvelope holds the extreme internal forces for one load case:
// midspan moment and support shear of a simply supported member under
// a uniformly distributed line load.
type CaseEnvelope struct {
	MmaxKNM float64 `json:"mmax_knm"`
	VmaxKN  float64 `json:"vmax_kn"`
}

// StoreyEnvelope holds the envelopes of all five load cases for one storey.
type StoreyEnvelope struct {
	Storey int          `json:"storey"`
	ULS1   CaseEnvelope `json:"uls1"`
	ULS2   CaseEnvelope `json:"uls2"`
	SLS1   CaseEnvelope `json:"sls1"`
	SLS2   CaseEnvelope `json:"sls2"`
	SLS3   CaseEnvelope `json:"sls3"`
}

// Compute derives the moment/shear envelope for every storey record,
// preserving input order. Simply supported, UDL: M = wL²/8, V = wL/2.
func Compute(records []loadcases.StoreyLoadRecord, spanM float64) []StoreyEnvelope {
	out := make([]StoreyEnvelope, len(records))
	for i, rec := range records {
		out[i] = StoreyEnvelope{
			Storey: rec.Storey,
			ULS1:   caseEnvelope(rec.ULS1, spanM),
			ULS2:   caseEnvelope(rec.ULS2, spanM),
			SLS1:   caseEnvelope(rec.SLS1, spanM),
			SLS2:   caseEnvelope(rec.SLS2, spanM),
			SLS3:   caseEnvelope(rec.SLS3, spanM),
		}
	}
	return out
}

func caseEnvelope(w, spanM float64) CaseEnvelope {
	m := w * spanM * spanM / 8.0 // N*m
	v := w * spanM / 2.0         // N
	return CaseEnvelope{
		MmaxKNM: round2(m / 1000.0),
		VmaxKN:  round2(v / 1000.0),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100.0) / 100.0
}
