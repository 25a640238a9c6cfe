package loadcases

import (
	"encoding/json"
	"net/http"

	member "Girder/internal/calc/member"
)

type Handler struct{}

type request struct {
	Member member.Descriptor `json:"member"`
	Live   LiveLoads         `json:"live"`
	Dead   DeadLoads         `json:"dead"`
}

type response struct {
	StoreyLoads []StoreyLoadRecord `json:"storey_loads"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := req.Member.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response{StoreyLoads: Generate(req.Member, req.Live, req.Dead)})
}
