package calc

import (
	"net/url"

	"Quanta/internal/form"
)

type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

// Quantity is one labeled output of a calculator.
type Quantity struct {
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
	Value Number `json:"value"`
}

type Outcome struct {
	Display    string     `json:"display,omitempty"`
	Quantities []Quantity `json:"quantities"`
}

// Calculator pairs a formula with its form fields, page and output formatting.
type Calculator struct {
	Slug    string
	Path    string
	Title   string
	Summary string
	Fields  []Field
	Eval    func(form.Values) Outcome
}

func (c Calculator) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}

// InvalidMessage is shown in place of a result when the submitted fields do not parse.
func (c Calculator) InvalidMessage() string {
	if len(c.Fields) == 1 {
		return "Invalid input. Please enter a numeric value."
	}
	return "Invalid input. Please enter numeric values."
}

// Evaluate parses the required fields from src and runs the formula.
// The returned error wraps form.ErrInvalidInput.
func (c Calculator) Evaluate(src url.Values) (Outcome, error) {
	v, err := form.Parse(src, c.FieldNames()...)
	if err != nil {
		return Outcome{}, err
	}
	return c.Eval(v), nil
}

// Inputs returns the raw values of the calculator's fields present in src.
func (c Calculator) Inputs(src url.Values) map[string]string {
	out := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		if src.Has(f.Name) {
			out[f.Name] = src.Get(f.Name)
		}
	}
	return out
}

func Single(display, label, unit string, value float64) Outcome {
	return Outcome{
		Display:    display,
		Quantities: []Quantity{{Label: label, Unit: unit, Value: Number(value)}},
	}
}
