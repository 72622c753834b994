package quark

import (
	"Quanta/internal/calc"
	"Quanta/internal/form"
)

var Calculator = calc.Calculator{
	Slug:    "quark",
	Path:    "/quantum/quark",
	Title:   "Quark Mass-Energy Calculator",
	Summary: "Rest energy of a mass, E = mc².",
	Fields: []calc.Field{
		{Name: "mass", Label: "Mass", Unit: "kg"},
	},
	Eval: func(v form.Values) calc.Outcome {
		res := Calculate(Input{MassKG: v.Get("mass")})
		return calc.Single("Energy equivalent: "+calc.Scientific(res.EnergyJ)+" J", "Energy equivalent", "J", res.EnergyJ)
	},
}
