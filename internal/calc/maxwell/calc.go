package maxwell

import "Quanta/internal/calc"

const (
	LawGaussElectric = "Gauss's Law for Electricity"
	LawGaussMagnetic = "Gauss's Law for Magnetism"
	LawFaraday       = "Faraday's Law of Induction"
	LawAmpere        = "Ampère's Law with Maxwell's addition"
)

type Input struct {
	E   float64 `json:"e"`
	B   float64 `json:"b"`
	Rho float64 `json:"rho"`
	J   float64 `json:"j"`
}

// Result holds the four field-equation terms.
type Result struct {
	GaussElectric float64 `json:"gauss_electric"`
	GaussMagnetic float64 `json:"gauss_magnetic"`
	Faraday       float64 `json:"faraday"`
	Ampere        float64 `json:"ampere"`
}

func Calculate(in Input) Result {
	return FieldEquations(in.E, in.B, in.Rho, in.J)
}

// FieldEquations evaluates div E, div B, curl E and curl B for point values
// of the fields, charge density and current density.
func FieldEquations(e, b, rho, j float64) Result {
	return Result{
		GaussElectric: rho / calc.VacuumPermittivity,
		GaussMagnetic: 0,
		Faraday:       -b,
		Ampere:        calc.VacuumPermeability*j + calc.VacuumPermittivity*e,
	}
}

// Quantities lists the terms in presentation order.
func (r Result) Quantities() []calc.Quantity {
	return []calc.Quantity{
		{Label: LawGaussElectric, Value: calc.Number(r.GaussElectric)},
		{Label: LawGaussMagnetic, Value: calc.Number(r.GaussMagnetic)},
		{Label: LawFaraday, Value: calc.Number(r.Faraday)},
		{Label: LawAmpere, Value: calc.Number(r.Ampere)},
	}
}
