package sweep

import (
	"errors"
	"math"
	"net/url"
	"strings"
	"testing"

	"Quanta/internal/calc/maxwell"
	"Quanta/internal/calc/quantum/gluon"
	"Quanta/internal/calc/quantum/quark"
)

func TestRun(t *testing.T) {
	s, err := Run(quark.Calculator, nil, Range{Field: "mass", From: 0, To: 4, Steps: 5}, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(s.X) != 5 || s.X[4] != 4 {
		t.Fatalf("unexpected x samples: %v", s.X)
	}
	for i, x := range s.X {
		if want := x * 3e8 * 3e8; s.Y[i] != want {
			t.Errorf("sample %d: expected %g, got %g", i, want, s.Y[i])
		}
	}
	if s.Label != "Energy equivalent" || s.Unit != "J" {
		t.Errorf("unexpected label %s (%s)", s.Label, s.Unit)
	}
}

func TestRunOutputLabel(t *testing.T) {
	base := url.Values{"E": {"0"}, "rho": {"0"}, "J": {"0"}}
	s, err := Run(maxwell.Calculator, base, Range{Field: "B", From: -1, To: 1, Steps: 3}, maxwell.LawFaraday)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := []float64{1, 0, -1}
	for i := range want {
		if s.Y[i] != want[i] {
			t.Errorf("sample %d: expected %g, got %g", i, want[i], s.Y[i])
		}
	}

	if _, err := Run(maxwell.Calculator, base, Range{Field: "B", From: 0, To: 1, Steps: 3}, "Coulomb"); err == nil {
		t.Error("expected error for unknown output")
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(quark.Calculator, nil, Range{Field: "mass", Steps: 1}, ""); err == nil {
		t.Error("expected error for a single step")
	}
	if _, err := Run(quark.Calculator, nil, Range{Field: "charge", Steps: 3}, ""); err == nil {
		t.Error("expected error for unknown field")
	}
	if _, err := Run(gluon.Calculator, nil, Range{Field: "distance", From: 1, To: 2, Steps: 3}, ""); err == nil {
		t.Error("expected invalid input error when other fields are missing")
	}
}

func TestPlot(t *testing.T) {
	s, err := Run(gluon.Calculator, url.Values{"alpha_s": {"0.3"}}, Range{Field: "distance", From: 0, To: 1, Steps: 11}, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !math.IsInf(s.Y[0], 1) {
		t.Fatalf("expected +Inf at zero distance, got %g", s.Y[0])
	}
	out, err := Plot(s, 40, 8)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	if !strings.Contains(out, "Strong force potential (GeV/fm) vs distance") {
		t.Errorf("expected caption in plot:\n%s", out)
	}
}

func TestPlotNoFinitePoints(t *testing.T) {
	s := Series{Label: "x", Field: "y", X: []float64{0, 1}, Y: []float64{math.NaN(), math.Inf(1)}}
	if _, err := Plot(s, 20, 5); !errors.Is(err, ErrNoPoints) {
		t.Errorf("expected ErrNoPoints, got %v", err)
	}
}
