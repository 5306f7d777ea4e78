package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 10, 100)
	require.Len(t, xs, 100)
	assert.Equal(t, 0.0, xs[0])
	assert.InDelta(t, 10.0, xs[99], 1e-12)
	assert.InDelta(t, 10.0/99, xs[1]-xs[0], 1e-12)

	assert.Equal(t, []float64{3}, Linspace(3, 7, 1))
	assert.Empty(t, Linspace(0, 1, 0))
	assert.Empty(t, Linspace(0, 1, -4))
}

func TestMap(t *testing.T) {
	ys := Map([]float64{0, math.Pi / 2}, math.Sin)
	require.Len(t, ys, 2)
	assert.InDelta(t, 0, ys[0], 1e-12)
	assert.InDelta(t, 1, ys[1], 1e-12)
}

func TestSourceIsDeterministic(t *testing.T) {
	a := Normal(Source(42, "hist"), 100, 15, 1000)
	b := Normal(Source(42, "hist"), 100, 15, 1000)
	assert.Equal(t, a, b)

	c := Normal(Source(42, "box"), 100, 15, 1000)
	assert.NotEqual(t, a, c, "different streams should not share values")

	d := Normal(Source(43, "hist"), 100, 15, 1000)
	assert.NotEqual(t, a, d, "different seeds should not share values")
}

func TestNormalMoments(t *testing.T) {
	xs := Normal(Source(7, "moments"), 100, 15, 20000)
	require.Len(t, xs, 20000)
	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 100, mean, 0.5)
	assert.InDelta(t, 15, std, 0.5)
}

func TestUniformBounds(t *testing.T) {
	xs := Uniform(Source(1, "u"), 0, 1, 500)
	require.Len(t, xs, 500)
	for _, x := range xs {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
	assert.Empty(t, Uniform(Source(1, "u"), 0, 1, 0))
}

func TestLinearFitRecoversLine(t *testing.T) {
	xs := Linspace(0, 10, 50)
	noise := Normal(Source(42, "trend"), 0, 3, 50)
	ys := Line(xs, 2, 5, noise)

	slope, intercept := LinearFit(xs, ys)
	assert.InDelta(t, 2, slope, 0.5)
	assert.InDelta(t, 5, intercept, 3)

	exact := Line(xs, 2, 5, nil)
	slope, intercept = LinearFit(xs, exact)
	assert.InDelta(t, 2, slope, 1e-9)
	assert.InDelta(t, 5, intercept, 1e-9)

	fitted := Evaluate(xs, slope, intercept)
	assert.InDeltaSlice(t, exact, fitted, 1e-9)
}
