package maxwell

import (
	"Quanta/internal/calc"
	"Quanta/internal/form"
)

var Calculator = calc.Calculator{
	Slug:    "maxwell",
	Path:    "/maxwell",
	Title:   "Maxwell's Equations Calculator",
	Summary: "Divergence and curl of the electric and magnetic fields.",
	Fields: []calc.Field{
		{Name: "E", Label: "Electric field", Unit: "V/m"},
		{Name: "B", Label: "Magnetic field", Unit: "T"},
		{Name: "rho", Label: "Charge density", Unit: "C/m³"},
		{Name: "J", Label: "Current density", Unit: "A/m²"},
	},
	Eval: evaluate,
}

// The field equations have no single display line; the page lists the raw terms.
func evaluate(v form.Values) calc.Outcome {
	res := Calculate(Input{E: v.Get("E"), B: v.Get("B"), Rho: v.Get("rho"), J: v.Get("J")})
	return calc.Outcome{Quantities: res.Quantities()}
}
