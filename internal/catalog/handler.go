package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog Catalog
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	designation := mux.Vars(r)["designation"]
	entry, err := h.Catalog.Lookup(r.Context(), designation)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Section not found", http.StatusNotFound)
			return
		}
		log.Printf("catalog lookup error: %v", err)
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Catalog.ListAll(r.Context())
	if err != nil {
		log.Printf("catalog list error: %v", err)
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.Catalog.Metadata(r.Context())
	if err != nil {
		log.Printf("catalog metadata error: %v", err)
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meta)
}
