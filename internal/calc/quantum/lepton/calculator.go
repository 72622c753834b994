package lepton

import (
	"Quanta/internal/calc"
	"Quanta/internal/form"
)

var Calculator = calc.Calculator{
	Slug:    "lepton",
	Path:    "/quantum/lepton",
	Title:   "Lepton Oscillation Calculator",
	Summary: "Two-flavour neutrino oscillation probability.",
	Fields: []calc.Field{
		{Name: "theta", Label: "Mixing angle θ", Unit: "rad"},
		{Name: "L", Label: "Baseline", Unit: "km"},
		{Name: "E", Label: "Neutrino energy", Unit: "GeV"},
	},
	Eval: func(v form.Values) calc.Outcome {
		res := Calculate(Input{Theta: v.Get("theta"), BaselineL: v.Get("L"), EnergyE: v.Get("E")})
		p := res.Probability
		return calc.Single("Oscillation probability: "+calc.Percent(p), "Oscillation probability", "", p)
	},
}
