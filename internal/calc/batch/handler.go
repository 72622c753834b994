package batch

import (
	"encoding/json"
	"net/http"

	"Quanta/internal/catalog"

	"github.com/gorilla/mux"
)

type Handler struct {
	Limit          int
	MaxUploadBytes int64
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	c, ok := catalog.Lookup(mux.Vars(r)["slug"])
	if !ok {
		http.Error(w, "Unknown calculator", http.StatusNotFound)
		return
	}
	var input Request
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Validate(h.Limit); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := Calculate(c, input.Values())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
