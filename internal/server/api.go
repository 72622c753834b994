package server

import (
	"encoding/json"
	"net/http"

	"Quanta/internal/calc"
	"Quanta/internal/form"
	"Quanta/internal/middleware"

	"github.com/gorilla/mux"
)

type calcRequest struct {
	Inputs map[string]any `json:"inputs"`
}

type calcResponse struct {
	Calculator string `json:"calculator"`
	calc.Outcome
	RequestID string `json:"request_id"`
}

type calculatorInfo struct {
	Slug   string       `json:"slug"`
	Path   string       `json:"path"`
	Title  string       `json:"title"`
	Fields []calc.Field `json:"fields"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (s *Server) apiList(w http.ResponseWriter, r *http.Request) {
	out := make([]calculatorInfo, len(s.calcs))
	for i, c := range s.calcs {
		out[i] = calculatorInfo{Slug: c.Slug, Path: c.Path, Title: c.Title, Fields: c.Fields}
	}
	writeJSON(w, http.StatusOK, out)
}

// apiCalc is the JSON counterpart of a page submission. Unlike the pages it
// reports invalid input with a 422.
func (s *Server) apiCalc(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookup(mux.Vars(r)["slug"])
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Unknown calculator")
		return
	}
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	out, err := c.Evaluate(form.FromJSON(req.Inputs))
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, c.InvalidMessage())
		return
	}
	writeJSON(w, http.StatusOK, calcResponse{
		Calculator: c.Slug,
		Outcome:    out,
		RequestID:  middleware.GetRequestID(r.Context()),
	})
}
