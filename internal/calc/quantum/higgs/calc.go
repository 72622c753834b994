package higgs

import "math"

type Input struct {
	MassGeV float64 `json:"mass_gev"`
	VevGeV  float64 `json:"vev_gev"`
}

type Result struct {
	Coupling float64 `json:"coupling"`
}

func Calculate(in Input) Result {
	return Result{Coupling: YukawaCoupling(in.MassGeV, in.VevGeV)}
}

// YukawaCoupling approximates y = m/(v·√2) for a fermion of mass m.
func YukawaCoupling(mass, vev float64) float64 {
	return mass / (vev * math.Sqrt2)
}
