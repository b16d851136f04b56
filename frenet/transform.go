package frenet

import (
	"math"

	"github.com/katalvlaran/latpath/geom"
)

// Analytic transforms between the SL frame and the Cartesian frame.
// Throughout, θr/κr/dκr are the reference-line heading, curvature and
// curvature derivative at the sample's arc length, l is the lateral
// offset and dl/ddl its derivatives with respect to arc length.

// Theta recovers the Cartesian heading of a path sample:
//
//	θ = normalize(atan2(dl, 1 − κr·l) + θr)
func Theta(refHeading, refKappa, l, dl float64) float64 {
	return geom.NormalizeAngle(math.Atan2(dl, 1-refKappa*l) + refHeading)
}

// Kappa recovers the Cartesian curvature of a path sample from the
// reference curvature, its derivative and the lateral state. The
// expression is the series form of the Frenet-to-Cartesian curvature
// transform; a vanishing denominator (lateral state folding back over
// the line's curvature center) yields zero.
func Kappa(refKappa, refDKappa, l, dl, ddl float64) float64 {
	oneMinusKL := 1 - refKappa*l
	den := dl*dl + oneMinusKL*oneMinusKL
	if den < 1e-8 {
		return 0
	}
	den = math.Pow(den, 1.5)
	num := refKappa + ddl -
		2*l*refKappa*refKappa -
		l*ddl*refKappa +
		l*l*refKappa*refKappa*refKappa +
		l*dl*refDKappa +
		2*dl*dl*refKappa

	return num / den
}

// LateralDerivative recovers dl from the heading difference between the
// vehicle and the reference line:
//
//	dl = (1 − κr·l) · tan(θ − θr)
func LateralDerivative(refHeading, theta, l, refKappa float64) float64 {
	return (1 - refKappa*l) * math.Tan(theta-refHeading)
}

// SecondOrderLateralDerivative recovers ddl from the vehicle heading and
// curvature against the reference geometry. Used once per cycle to seed
// the root lattice state.
func SecondOrderLateralDerivative(refHeading, theta, refKappa, kappa, refDKappa, l float64) float64 {
	dl := LateralDerivative(refHeading, theta, l, refKappa)
	dTheta := theta - refHeading
	cosDTheta := math.Cos(dTheta)
	oneMinusKL := 1 - refKappa*l

	return -(refDKappa*l+refKappa*dl)*math.Tan(dTheta) +
		oneMinusKL/(cosDTheta*cosDTheta)*
			(kappa*oneMinusKL/cosDTheta-refKappa)
}
