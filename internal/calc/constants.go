package calc

// Physical constants, rounded the way the calculators publish them.
const (
	SpeedOfLight       = 3e8       // c, m/s
	Planck             = 6.626e-34 // h, J·s
	VacuumPermittivity = 8.854e-12 // ε0, F/m
	VacuumPermeability = 1.2566e-6 // μ0, H/m
)
