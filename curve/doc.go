// Package curve implements the one-dimensional quintic polynomial used as
// the lateral profile of every lattice edge.
//
// A Quintic is the unique degree-5 polynomial l(s) over s ∈ [0, T] that
// matches position, first and second derivative at both ends of the span:
//
//	l(0) = l0,  l'(0) = dl0,  l''(0) = ddl0
//	l(T) = l1,  l'(T) = dl1,  l''(T) = ddl1
//
// The three lowest coefficients follow directly from the start conditions;
// the remaining three are the solution of a 3×3 linear system in the end
// conditions, solved with gonum's dense solver at construction time.
// Evaluation supports derivative orders 0, 1 and 2; anything higher is a
// programming error and panics.
//
// Complexity: construction is a constant-size solve, evaluation is O(1).
package curve
