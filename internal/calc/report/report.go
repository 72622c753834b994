package report

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"Quanta/internal/calc"

	"github.com/phpdave11/gofpdf"
)

// Write renders one calculation as an A4 PDF.
func Write(w io.Writer, c calc.Calculator, inputs url.Values, out calc.Outcome, at time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(c.Title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(c.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if c.Summary != "" {
		pdf.MultiCell(0, 6, tr(c.Summary), "", "L", false)
		pdf.Ln(2)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", at.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, f := range c.Fields {
		pdf.Cell(0, 6, tr(withUnit(fmt.Sprintf("%s (%s): %s", f.Label, f.Name, inputs.Get(f.Name)), f.Unit)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if out.Display != "" {
		pdf.Cell(0, 6, tr(out.Display))
		pdf.Ln(8)
	}
	for _, q := range out.Quantities {
		pdf.Cell(0, 6, tr(withUnit(fmt.Sprintf("%s: %s", q.Label, q.Value), q.Unit)))
		pdf.Ln(6)
	}

	return pdf.Output(w)
}

func withUnit(s, unit string) string {
	if unit == "" {
		return s
	}
	return s + " " + unit
}
