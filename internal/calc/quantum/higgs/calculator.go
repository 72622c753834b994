package higgs

import (
	"Quanta/internal/calc"
	"Quanta/internal/form"
)

var Calculator = calc.Calculator{
	Slug:    "higgs",
	Path:    "/quantum/higgs",
	Title:   "Higgs Coupling Calculator",
	Summary: "Yukawa coupling of a fermion to the Higgs field.",
	Fields: []calc.Field{
		{Name: "mass", Label: "Fermion mass", Unit: "GeV"},
		{Name: "vev", Label: "Vacuum expectation value", Unit: "GeV"},
	},
	Eval: func(v form.Values) calc.Outcome {
		y := Calculate(Input{MassGeV: v.Get("mass"), VevGeV: v.Get("vev")}).Coupling
		return calc.Single("Yukawa coupling: "+calc.Fixed(y, 4), "Yukawa coupling", "", y)
	},
}
