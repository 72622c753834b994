package gluon

type Input struct {
	AlphaS    float64 `json:"alpha_s"`
	DistanceF float64 `json:"distance_fm"`
}

type Result struct {
	PotentialGeVFm float64 `json:"potential_gev_fm"`
}

func Calculate(in Input) Result {
	return Result{PotentialGeVFm: StrongPotential(in.AlphaS, in.DistanceF)}
}

// StrongPotential is the coupling over separation. A zero distance yields an
// infinite (or NaN) potential rather than an error.
func StrongPotential(alphaS, distance float64) float64 {
	return alphaS / distance
}
