package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"Quanta/internal/calc"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageData struct {
	Title       string
	Calculators []calc.Calculator
	Calculator  *calc.Calculator
	Inputs      map[string]string
	Outcome     *calc.Outcome
	Message     string
	ShareURL    string
}

// Pages holds one parsed template set per page, each sharing the layout.
type Pages struct {
	sets map[string]*template.Template
}

func LoadPages() (*Pages, error) {
	p := &Pages{sets: make(map[string]*template.Template)}
	for _, name := range []string{"index", "calculator"} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		p.sets[name] = t
	}
	return p, nil
}

// Render always answers 200 unless the template itself fails.
func (p *Pages) Render(w http.ResponseWriter, name string, data pageData) {
	t, ok := p.sets[name]
	if !ok {
		http.Error(w, "Page not found", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
