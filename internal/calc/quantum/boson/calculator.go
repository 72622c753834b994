package boson

import (
	"Quanta/internal/calc"
	"Quanta/internal/form"
)

var Calculator = calc.Calculator{
	Slug:    "boson",
	Path:    "/quantum/boson",
	Title:   "Boson Mass Calculator",
	Summary: "Mass of a boson from its Compton wavelength.",
	Fields: []calc.Field{
		{Name: "wavelength", Label: "Wavelength", Unit: "m"},
	},
	Eval: func(v form.Values) calc.Outcome {
		m := Calculate(Input{WavelengthM: v.Get("wavelength")}).MassKG
		return calc.Single("Boson mass: "+calc.Scientific(m)+" kg", "Boson mass", "kg", m)
	},
}
