package report

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"Quanta/internal/catalog"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	c, ok := catalog.Lookup(mux.Vars(r)["slug"])
	if !ok {
		http.Error(w, "Unknown calculator", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, c.InvalidMessage(), http.StatusBadRequest)
		return
	}
	out, err := c.Evaluate(r.PostForm)
	if err != nil {
		http.Error(w, c.InvalidMessage(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, c, r.PostForm, out, time.Now()); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.Slug+"-report.pdf"))
	w.Write(buf.Bytes())
}
