package gluon

import (
	"Quanta/internal/calc"
	"Quanta/internal/form"
)

var Calculator = calc.Calculator{
	Slug:    "gluon",
	Path:    "/quantum/gluon",
	Title:   "Gluon Strong Force Calculator",
	Summary: "Strong force potential from the coupling constant and separation.",
	Fields: []calc.Field{
		{Name: "alpha_s", Label: "Strong coupling αs"},
		{Name: "distance", Label: "Distance", Unit: "fm"},
	},
	Eval: func(v form.Values) calc.Outcome {
		res := Calculate(Input{AlphaS: v.Get("alpha_s"), DistanceF: v.Get("distance")})
		p := res.PotentialGeVFm
		return calc.Single("Strong force potential: "+calc.Scientific(p)+" GeV/fm", "Strong force potential", "GeV/fm", p)
	},
}
