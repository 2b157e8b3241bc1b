// Package systems implements the per-tick subsystem controllers.
package systems

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Curve is a monotonic piecewise-linear response curve mapping a power
// level in [0,1] to a performance multiplier.
type Curve struct {
	pl   interp.PiecewiseLinear
	name string
}

// NewCurve builds a curve from explicit control points. The xs must be
// strictly increasing and the ys non-decreasing; monotonicity is an
// invariant of every response curve.
func NewCurve(name string, xs, ys []float64) (*Curve, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("curve %s: %d xs vs %d ys", name, len(xs), len(ys))
	}
	for i := 1; i < len(ys); i++ {
		if ys[i] < ys[i-1] {
			return nil, fmt.Errorf("curve %s: ys not monotonic at index %d", name, i)
		}
	}
	c := &Curve{name: name}
	if err := c.pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("curve %s: %w", name, err)
	}
	return c, nil
}

// mustCurve is NewCurve for the fixed built-in tables.
func mustCurve(name string, xs, ys []float64) *Curve {
	c, err := NewCurve(name, xs, ys)
	if err != nil {
		panic(err)
	}
	return c
}

// Eval returns the multiplier for the given power level.
// Inputs outside [0,1] are clamped.
func (c *Curve) Eval(level float64) float64 {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	return c.pl.Predict(level)
}

// Name returns the curve's name.
func (c *Curve) Name() string {
	return c.name
}

// The four engine response curves. Control points chosen so that low power
// keeps ships barely controllable (speed and turning never reach zero)
// while afterburner drops out entirely.
var (
	speedCurve = mustCurve("speed",
		[]float64{0, 0.25, 0.5, 0.75, 1.0},
		[]float64{0.10, 0.40, 0.70, 0.90, 1.0})

	accelerationCurve = mustCurve("acceleration",
		[]float64{0, 0.25, 0.5, 0.75, 1.0},
		[]float64{0.05, 0.30, 0.60, 0.85, 1.0})

	turnRateCurve = mustCurve("turn_rate",
		[]float64{0, 0.25, 0.5, 0.75, 1.0},
		[]float64{0.30, 0.50, 0.75, 0.90, 1.0})

	afterburnerCurve = mustCurve("afterburner_efficiency",
		[]float64{0, 0.25, 0.5, 0.75, 1.0},
		[]float64{0, 0.20, 0.50, 0.80, 1.0})
)
