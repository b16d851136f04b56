package curve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for quintic construction.
var (
	// ErrNonPositiveLength indicates the arc-length span was zero or negative.
	ErrNonPositiveLength = errors.New("curve: arc-length span must be positive")

	// ErrBoundarySolve indicates the boundary-condition system could not be
	// solved. With a positive span the system is always regular, so seeing
	// this error means the span is numerically degenerate (e.g. denormal).
	ErrBoundarySolve = errors.New("curve: boundary-condition solve failed")
)

// Quintic is an immutable degree-5 polynomial lateral profile over a
// positive arc-length span. Construct with NewQuintic.
type Quintic struct {
	coef   [6]float64 // c0..c5, l(s) = Σ ci·sⁱ
	length float64
}

// NewQuintic fits the unique quintic matching (l0, dl0, ddl0) at s=0 and
// (l1, dl1, ddl1) at s=length. Returns ErrNonPositiveLength when
// length ≤ 0.
func NewQuintic(l0, dl0, ddl0, l1, dl1, ddl1, length float64) (Quintic, error) {
	if length <= 0 {
		return Quintic{}, fmt.Errorf("%w: got %v", ErrNonPositiveLength, length)
	}

	q := Quintic{length: length}

	// 1) Start conditions pin the three lowest coefficients directly.
	q.coef[0] = l0
	q.coef[1] = dl0
	q.coef[2] = ddl0 / 2

	// 2) End conditions form a 3×3 system in c3, c4, c5:
	//      T³·c3 +  T⁴·c4 +   T⁵·c5 = l1   - (c0 + c1·T + c2·T²)
	//     3T²·c3 + 4T³·c4 +  5T⁴·c5 = dl1  - (c1 + 2·c2·T)
	//     6T·c3  + 12T²·c4 + 20T³·c5 = ddl1 - 2·c2
	t := length
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t

	a := mat.NewDense(3, 3, []float64{
		t3, t4, t5,
		3 * t2, 4 * t3, 5 * t4,
		6 * t, 12 * t2, 20 * t3,
	})
	b := mat.NewVecDense(3, []float64{
		l1 - (q.coef[0] + q.coef[1]*t + q.coef[2]*t2),
		dl1 - (q.coef[1] + 2*q.coef[2]*t),
		ddl1 - 2*q.coef[2],
	})

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return Quintic{}, fmt.Errorf("%w: span %v: %v", ErrBoundarySolve, length, err)
	}
	q.coef[3] = x.AtVec(0)
	q.coef[4] = x.AtVec(1)
	q.coef[5] = x.AtVec(2)

	return q, nil
}

// Length returns the arc-length span the curve was fit over.
func (q Quintic) Length() float64 { return q.length }

// Evaluate returns the order-th derivative (0, 1 or 2) of the lateral
// offset at local arc length s ∈ [0, Length]. Orders above 2 are a
// precondition violation and panic.
func (q Quintic) Evaluate(order int, s float64) float64 {
	switch order {
	case 0:
		// Horner over c0..c5.
		return ((((q.coef[5]*s+q.coef[4])*s+q.coef[3])*s+q.coef[2])*s+q.coef[1])*s + q.coef[0]
	case 1:
		return (((5*q.coef[5]*s+4*q.coef[4])*s+3*q.coef[3])*s+2*q.coef[2])*s + q.coef[1]
	case 2:
		return ((20*q.coef[5]*s+12*q.coef[4])*s+6*q.coef[3])*s + 2*q.coef[2]
	default:
		panic(fmt.Sprintf("curve: derivative order %d not supported", order))
	}
}
