package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"Quanta/internal/calc"
	"Quanta/internal/catalog"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	resultSheet     = "Results"
)

var errEmptySheet = errors.New("empty sheet")

// Import evaluates every data row of an uploaded workbook and answers with a
// workbook holding the inputs and one column per result quantity.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	c, ok := catalog.Lookup(mux.Vars(r)["slug"])
	if !ok {
		http.Error(w, "Unknown calculator", http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		http.Error(w, "File too big", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil || !isZip(mtype) {
		http.Error(w, "Upload an .xlsx workbook", http.StatusUnsupportedMediaType)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	rows, err := ReadRows(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	if len(rows) > h.Limit {
		http.Error(w, fmt.Sprintf("At most %d rows per workbook", h.Limit), http.StatusBadRequest)
		return
	}

	buf, err := WriteWorkbook(c, Calculate(c, rows))
	if err != nil {
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.Slug+"-results.xlsx"))
	w.Write(buf.Bytes())
}

// An xlsx file is a zip container; excelize rejects other zips later.
func isZip(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

// ReadRows reads the first sheet: the header row names the fields, every
// following row is one set of inputs. Empty cells are left out.
func ReadRows(r io.Reader) ([]url.Values, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errEmptySheet
	}

	header := rows[0]
	out := make([]url.Values, 0, len(rows)-1)
	for _, row := range rows[1:] {
		vals := url.Values{}
		for i, cell := range row {
			if i >= len(header) || strings.TrimSpace(cell) == "" {
				continue
			}
			vals.Set(strings.TrimSpace(header[i]), cell)
		}
		out = append(out, vals)
	}
	return out, nil
}

// WriteWorkbook lays out the inputs, the result quantities and the error of every item.
func WriteWorkbook(c calc.Calculator, res Result) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return nil, err
	}

	var labels []string
	for _, item := range res.Items {
		if item.Outcome != nil {
			for _, q := range item.Outcome.Quantities {
				labels = append(labels, withUnit(q.Label, q.Unit))
			}
			break
		}
	}

	header := make([]any, 0, len(c.Fields)+len(labels)+2)
	for _, fld := range c.Fields {
		header = append(header, fld.Name)
	}
	for _, l := range labels {
		header = append(header, l)
	}
	header = append(header, "display", "error")
	if err := f.SetSheetRow(resultSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, item := range res.Items {
		row := make([]any, 0, len(header))
		for _, fld := range c.Fields {
			row = append(row, item.Inputs[fld.Name])
		}
		display := ""
		if item.Outcome != nil {
			for _, q := range item.Outcome.Quantities {
				row = append(row, cellValue(q.Value))
			}
			display = item.Outcome.Display
		} else {
			for range labels {
				row = append(row, "")
			}
		}
		row = append(row, display, item.Error)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(resultSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

// Spreadsheets cannot hold IEEE infinities, so those are written as text.
func cellValue(n calc.Number) any {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return n.String()
	}
	return v
}

func withUnit(label, unit string) string {
	if unit == "" {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, unit)
}
