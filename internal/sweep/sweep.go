package sweep

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"Quanta/internal/calc"

	"github.com/guptarohit/asciigraph"
)

var ErrNoPoints = errors.New("sweep produced no finite points")

type Range struct {
	Field string
	From  float64
	To    float64
	Steps int
}

// Series is one output quantity sampled along a range of one input field.
type Series struct {
	Field string
	Label string
	Unit  string
	X     []float64
	Y     []float64
}

// Run evaluates c at Steps evenly spaced values of r.Field, holding the other
// fields at base. output picks a quantity by label; empty means the first.
func Run(c calc.Calculator, base url.Values, r Range, output string) (Series, error) {
	if r.Steps < 2 {
		return Series{}, fmt.Errorf("steps must be at least 2, got %d", r.Steps)
	}
	known := false
	for _, f := range c.Fields {
		if f.Name == r.Field {
			known = true
		}
	}
	if !known {
		return Series{}, fmt.Errorf("%s has no field %q", c.Slug, r.Field)
	}

	s := Series{Field: r.Field, X: make([]float64, 0, r.Steps), Y: make([]float64, 0, r.Steps)}
	step := (r.To - r.From) / float64(r.Steps-1)
	for i := 0; i < r.Steps; i++ {
		x := r.From + float64(i)*step
		vals := url.Values{}
		for k, v := range base {
			vals[k] = v
		}
		vals.Set(r.Field, strconv.FormatFloat(x, 'g', -1, 64))

		out, err := c.Evaluate(vals)
		if err != nil {
			return Series{}, err
		}
		q, err := pick(out.Quantities, output)
		if err != nil {
			return Series{}, err
		}
		s.Label, s.Unit = q.Label, q.Unit
		s.X = append(s.X, x)
		s.Y = append(s.Y, float64(q.Value))
	}
	return s, nil
}

func pick(qs []calc.Quantity, label string) (calc.Quantity, error) {
	if len(qs) == 0 {
		return calc.Quantity{}, errors.New("calculator has no outputs")
	}
	if label == "" {
		return qs[0], nil
	}
	for _, q := range qs {
		if q.Label == label {
			return q, nil
		}
	}
	return calc.Quantity{}, fmt.Errorf("no output labeled %q", label)
}

// Plot draws the series; non-finite samples are left as gaps.
func Plot(s Series, width, height int) (string, error) {
	data := make([]float64, len(s.Y))
	finite := 0
	for i, y := range s.Y {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			data[i] = math.NaN()
			continue
		}
		data[i] = y
		finite++
	}
	if finite == 0 {
		return "", ErrNoPoints
	}

	caption := fmt.Sprintf("%s vs %s [%g, %g]", s.Label, s.Field, s.X[0], s.X[len(s.X)-1])
	if s.Unit != "" {
		caption = fmt.Sprintf("%s (%s) vs %s [%g, %g]", s.Label, s.Unit, s.Field, s.X[0], s.X[len(s.X)-1])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	), nil
}
