package qsim

import "fmt"

/*
BlochVector is the 3-D unit-sphere projection of a single qubit state,
the coordinate the visualization layer consumes. The ground state maps to
(0, 0, 1), the excited state to (0, 0, -1), and the equal real
superposition to (1, 0, 0).
*/
type BlochVector struct {
	X float64
	Y float64
	Z float64
}

/*
Bloch projects an amplitude pair onto the Bloch sphere:

	x = 2(re α · re β + im α · im β)
	y = 2(im α · re β − re α · im β)
	z = |α|² − |β|²

The projection is recomputed from the live state on every query, never
cached.
*/
func Bloch(s QubitState) BlochVector {
	ar, ai := real(s.Alpha), imag(s.Alpha)
	br, bi := real(s.Beta), imag(s.Beta)

	return BlochVector{
		X: 2 * (ar*br + ai*bi),
		Y: 2 * (ai*br - ar*bi),
		Z: ar*ar + ai*ai - br*br - bi*bi,
	}
}

// String renders the vector compactly, for logs and screen-reader
// announcement layers.
func (v BlochVector) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
