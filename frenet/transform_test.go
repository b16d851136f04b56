package frenet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/latpath/frenet"
)

// TestTheta_StraightReference: along a straight line (κr = 0) the heading
// is the reference heading plus atan2(dl, 1).
func TestTheta_StraightReference(t *testing.T) {
	assert.InDelta(t, 0.0, frenet.Theta(0, 0, 1.5, 0), eps, "zero dl keeps reference heading")
	assert.InDelta(t, math.Atan2(0.2, 1), frenet.Theta(0, 0, 0, 0.2), eps)
	assert.InDelta(t, 1.0+math.Atan2(-0.3, 1), frenet.Theta(1.0, 0, 2, -0.3), eps)
}

// TestTheta_Normalized: the composed heading wraps into (-π, π].
func TestTheta_Normalized(t *testing.T) {
	th := frenet.Theta(math.Pi-0.05, 0, 0, 0.5)
	assert.LessOrEqual(t, th, math.Pi)
	assert.Greater(t, th, -math.Pi)
}

// TestKappa_StraightReference: with κr = dκr = 0 the transform reduces to
// the plane-curve curvature ddl / (1 + dl²)^1.5.
func TestKappa_StraightReference(t *testing.T) {
	assert.InDelta(t, 0.0, frenet.Kappa(0, 0, 0.7, 0, 0), eps, "flat profile has zero curvature")

	dl, ddl := 0.3, 0.1
	want := ddl / math.Pow(1+dl*dl, 1.5)
	assert.InDelta(t, want, frenet.Kappa(0, 0, 0, dl, ddl), eps)
}

// TestKappa_DegenerateDenominator: a lateral state folding over the
// curvature center yields zero instead of blowing up.
func TestKappa_DegenerateDenominator(t *testing.T) {
	// κr·l = 1 and dl = 0 → denominator vanishes.
	assert.Equal(t, 0.0, frenet.Kappa(0.5, 0, 2, 0, 1))
}

// TestLateralDerivative_RoundTrip: Theta and LateralDerivative are exact
// inverses along a straight reference line.
func TestLateralDerivative_RoundTrip(t *testing.T) {
	for _, dl := range []float64{-0.8, -0.1, 0, 0.25, 1.2} {
		theta := frenet.Theta(0.4, 0, 0.9, dl)
		got := frenet.LateralDerivative(0.4, theta, 0.9, 0)
		assert.InDelta(t, dl, got, 1e-9, "dl round trip for %v", dl)
	}
}

// TestSecondOrderLateralDerivative_Centered: vehicle aligned with a
// straight reference line and driving straight has ddl = 0; a steering
// vehicle's ddl equals its own curvature.
func TestSecondOrderLateralDerivative_Centered(t *testing.T) {
	assert.InDelta(t, 0.0,
		frenet.SecondOrderLateralDerivative(0, 0, 0, 0, 0, 0), eps)

	// θ = θr, κr = 0: expression reduces to the vehicle curvature κ.
	assert.InDelta(t, 0.07,
		frenet.SecondOrderLateralDerivative(0, 0, 0, 0.07, 0, 1.5), eps)
}
