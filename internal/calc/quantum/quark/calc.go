package quark

import "Quanta/internal/calc"

type Input struct {
	MassKG float64 `json:"mass_kg"`
}

type Result struct {
	EnergyJ float64 `json:"energy_j"`
}

func Calculate(in Input) Result {
	return Result{EnergyJ: MassEnergy(in.MassKG)}
}

// MassEnergy returns the rest energy E = mc².
func MassEnergy(mass float64) float64 {
	return mass * (calc.SpeedOfLight * calc.SpeedOfLight)
}
