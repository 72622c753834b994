package lepton

import (
	"math"
	"math/rand"
	"net/url"
	"strings"
	"testing"
)

func TestOscillationProbability(t *testing.T) {
	theta, l, e := 0.785, 295.0, 2.5
	want := math.Pow(math.Sin(2*theta), 2) * math.Pow(math.Sin(1.27*l/e), 2)
	if got := OscillationProbability(theta, l, e); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestOscillationProbabilityGrouping(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		theta, l, e := rng.Float64()*3, rng.Float64()*1000, 0.1+rng.Float64()*10
		mix, phase := math.Sin(2*theta), math.Sin(1.27*l/e)
		if got, want := OscillationProbability(theta, l, e), (mix*mix)*(phase*phase); got != want {
			t.Fatalf("theta=%v L=%v E=%v: expected %v, got %v", theta, l, e, want, got)
		}
	}
}

func TestCalculate(t *testing.T) {
	in := Input{Theta: 0.785, BaselineL: 295, EnergyE: 2.5}
	if got := Calculate(in).Probability; got != OscillationProbability(0.785, 295, 2.5) {
		t.Errorf("Calculate disagrees with OscillationProbability: %g", got)
	}
}

func TestOscillationProbabilityBounds(t *testing.T) {
	for theta := -3.0; theta <= 3.0; theta += 0.37 {
		for l := 0.0; l <= 1000; l += 97 {
			p := OscillationProbability(theta, l, 1.3)
			if p < 0 || p > 1 {
				t.Errorf("probability out of range for theta=%g L=%g: %g", theta, l, p)
			}
		}
	}
}

func TestOscillationProbabilityZeroEnergy(t *testing.T) {
	if got := OscillationProbability(0.5, 100, 0); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %g", got)
	}
}

func TestCalculatorDisplay(t *testing.T) {
	out, err := Calculator.Evaluate(url.Values{"theta": {"0.785"}, "L": {"295"}, "E": {"2.5"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Display != "Oscillation probability: 64.88%" {
		t.Errorf("unexpected display: %s", out.Display)
	}

	out, err = Calculator.Evaluate(url.Values{"theta": {"0.785"}, "L": {"295"}, "E": {"0"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out.Display, "nan%") {
		t.Errorf("expected nan%%, got %s", out.Display)
	}
}
