package lepton

import "math"

// Baseline-over-energy factor for L in km and E in GeV.
const phaseFactor = 1.27

type Input struct {
	Theta     float64 `json:"theta"`
	BaselineL float64 `json:"l"`
	EnergyE   float64 `json:"e"`
}

type Result struct {
	Probability float64 `json:"probability"`
}

func Calculate(in Input) Result {
	return Result{Probability: OscillationProbability(in.Theta, in.BaselineL, in.EnergyE)}
}

// OscillationProbability is the two-flavour approximation
// sin²(2θ)·sin²(1.27·L/E). With E = 0 the phase is infinite and the result NaN.
func OscillationProbability(theta, l, e float64) float64 {
	mix := math.Sin(2 * theta)
	phase := math.Sin(phaseFactor * l / e)
	return (mix * mix) * (phase * phase)
}
