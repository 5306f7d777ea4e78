// Package sample synthesizes the small numeric sequences the gallery charts are drawn from.
package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zeebo/xxh3"
)

// Source returns a deterministic random source for the named stream. Streams
// derived from the same seed are independent of each other, so a chart renders
// the same values regardless of which other charts were rendered before it.
func Source(seed uint64, stream string) rand.Source {
	return rand.NewSource(xxh3.HashString(stream) ^ seed)
}

// Linspace returns n evenly spaced values over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Map applies f to every element of xs and returns the results in a new slice.
func Map(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// Normal draws n values from N(mu, sigma²).
func Normal(src rand.Source, mu, sigma float64, n int) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	return draw(dist.Rand, n)
}

// Uniform draws n values from U[lo, hi).
func Uniform(src rand.Source, lo, hi float64, n int) []float64 {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: src}
	return draw(dist.Rand, n)
}

func draw(f func() float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f()
	}
	return out
}

// Line returns slope*x + intercept + noise[i] for every x. noise may be nil;
// otherwise it must be at least as long as xs.
func Line(xs []float64, slope, intercept float64, noise []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = slope*x + intercept
		if noise != nil {
			ys[i] += noise[i]
		}
	}
	return ys
}

// LinearFit returns the least-squares slope and intercept of ys against xs.
func LinearFit(xs, ys []float64) (slope, intercept float64) {
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept
}

// Evaluate evaluates the line slope*x + intercept at every x.
func Evaluate(xs []float64, slope, intercept float64) []float64 {
	return Line(xs, slope, intercept, nil)
}
