package envelope

import (
	"encoding/json"
	"net/http"

	loadcases "Girder/internal/calc/loadcases"
)

type Handler struct{}

type request struct {
	StoreyLoads []loadcases.StoreyLoadRecord `json:"storey_loads"`
	SpanM       float64                      `json:"span_m"`
}

type response struct {
	Envelopes []StoreyEnvelope `json:"envelopes"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.SpanM <= 0 {
		http.Error(w, "Span must be positive", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{Envelopes: Compute(req.StoreyLoads, req.SpanM)})
}
