package catalog

import (
	"Quanta/internal/calc"
	"Quanta/internal/calc/maxwell"
	"Quanta/internal/calc/quantum/boson"
	"Quanta/internal/calc/quantum/gluon"
	"Quanta/internal/calc/quantum/higgs"
	"Quanta/internal/calc/quantum/lepton"
	"Quanta/internal/calc/quantum/quark"
)

// All returns every calculator in the order the home page lists them.
func All() []calc.Calculator {
	return []calc.Calculator{
		maxwell.Calculator,
		quark.Calculator,
		gluon.Calculator,
		lepton.Calculator,
		boson.Calculator,
		higgs.Calculator,
	}
}

func Lookup(slug string) (calc.Calculator, bool) {
	for _, c := range All() {
		if c.Slug == slug {
			return c, true
		}
	}
	return calc.Calculator{}, false
}

func Slugs() []string {
	all := All()
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = c.Slug
	}
	return out
}
