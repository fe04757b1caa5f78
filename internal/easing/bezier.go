// Package easing evaluates CSS-style cubic Bézier timing curves.
//
// A curve is fixed by its two inner control points (x1, y1) and (x2, y2); the outer points are
// (0, 0) and (1, 1). Evaluating a curve maps linear progress in [0, 1] to eased progress.
package easing

import "github.com/chewxy/math32"

const (
	newtonIterations    = 4
	newtonMinSlope      = 0.001
	subdivisionPrecison = 1e-7
	subdivisionMaxIter  = 10
	sampleTableSize     = 11
	sampleStep          = 1.0 / (sampleTableSize - 1)
)

// Curve is a cubic Bézier easing curve. Build it with New; the zero value is linear.
type Curve struct {
	X1, Y1, X2, Y2 float32

	linear  bool
	samples [sampleTableSize]float32
}

// New builds a curve from its control points. x1 and x2 are clamped to [0, 1] so the
// curve stays a function of x.
func New(x1, y1, x2, y2 float32) Curve {
	c := Curve{
		X1: clamp01(x1), Y1: y1,
		X2: clamp01(x2), Y2: y2,
	}
	c.linear = c.X1 == c.Y1 && c.X2 == c.Y2
	if !c.linear {
		for i := range c.samples {
			c.samples[i] = bezier(float32(i)*sampleStep, c.X1, c.X2)
		}
	}
	return c
}

// FromPoints builds a curve from a 4-element control list, falling back to linear when the
// list has the wrong length.
func FromPoints(p []float32) Curve {
	if len(p) != 4 {
		return Linear
	}
	return New(p[0], p[1], p[2], p[3])
}

// Points returns the control list.
func (c Curve) Points() []float32 {
	return []float32{c.X1, c.Y1, c.X2, c.Y2}
}

// At returns the eased value for progress t. t is clamped to [0, 1] and the endpoints are exact.
func (c Curve) At(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if c.linear || (c == Curve{}) {
		return t
	}
	return bezier(c.tForX(t), c.Y1, c.Y2)
}

func (c Curve) tForX(x float32) float32 {
	var start float32
	i := 1
	last := sampleTableSize - 1
	for ; i != last && c.samples[i] <= x; i++ {
		start += sampleStep
	}
	i--

	dist := (x - c.samples[i]) / (c.samples[i+1] - c.samples[i])
	guess := start + dist*sampleStep

	slope := bezierSlope(guess, c.X1, c.X2)
	switch {
	case slope >= newtonMinSlope:
		return newtonRaphson(x, guess, c.X1, c.X2)
	case slope == 0:
		return guess
	default:
		return binarySubdivide(x, start, start+sampleStep, c.X1, c.X2)
	}
}

func newtonRaphson(x, guess, x1, x2 float32) float32 {
	for i := 0; i < newtonIterations; i++ {
		slope := bezierSlope(guess, x1, x2)
		if slope == 0 {
			return guess
		}
		guess -= (bezier(guess, x1, x2) - x) / slope
	}
	return guess
}

func binarySubdivide(x, lo, hi, x1, x2 float32) float32 {
	var cur, t float32
	for i := 0; i < subdivisionMaxIter; i++ {
		t = lo + (hi-lo)/2
		cur = bezier(t, x1, x2) - x
		if cur > 0 {
			hi = t
		} else {
			lo = t
		}
		if math32.Abs(cur) <= subdivisionPrecison {
			break
		}
	}
	return t
}

// bezier evaluates one coordinate of the curve at parameter t for inner points p1, p2.
func bezier(t, p1, p2 float32) float32 {
	a := 1 - 3*p2 + 3*p1
	b := 3*p2 - 6*p1
	c := 3 * p1
	return ((a*t+b)*t + c) * t
}

func bezierSlope(t, p1, p2 float32) float32 {
	a := 1 - 3*p2 + 3*p1
	b := 3*p2 - 6*p1
	c := 3 * p1
	return 3*a*t*t + 2*b*t + c
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
