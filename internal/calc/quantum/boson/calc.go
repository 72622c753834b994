package boson

import "Quanta/internal/calc"

type Input struct {
	WavelengthM float64 `json:"wavelength_m"`
}

type Result struct {
	MassKG float64 `json:"mass_kg"`
}

func Calculate(in Input) Result {
	return Result{MassKG: Mass(in.WavelengthM)}
}

// Mass inverts the Compton wavelength, m = h/(λc).
func Mass(wavelength float64) float64 {
	return calc.Planck / (wavelength * calc.SpeedOfLight)
}
