package qsim

import "math"

/*
Qubit is a single two-level quantum system, held as a pair of complex
probability amplitudes: alpha for |0⟩ and beta for |1⟩. A register owns
its qubits exclusively; code outside this package only ever sees
QubitState snapshots, never the live amplitudes.

The amplitudes are assumed normalized (|alpha|² + |beta|² = 1). The
simulator does not enforce or restore this invariant: valid unitaries
preserve it up to floating-point error, and no renormalization happens
after gate application.
*/
type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

// NewQubit creates a qubit with explicit amplitudes.
func NewQubit(alpha, beta complex128) *Qubit {
	return &Qubit{
		alpha: alpha,
		beta:  beta,
	}
}

// ground resets the qubit to |0⟩, discarding any superposition and phase.
func (q *Qubit) ground() {
	q.alpha = 1
	q.beta = 0
}

/*
apply multiplies a 2×2 unitary into the amplitude pair:

	newAlpha = M[0][0]*alpha + M[0][1]*beta
	newBeta  = M[1][0]*alpha + M[1][1]*beta
*/
func (q *Qubit) apply(m Matrix) {
	newAlpha := m[0][0]*q.alpha + m[0][1]*q.beta
	newBeta := m[1][0]*q.alpha + m[1][1]*q.beta
	q.alpha = newAlpha
	q.beta = newBeta
}

// probabilityOne is |beta|², the chance of observing 1 in the
// computational basis.
func (q *Qubit) probabilityOne() float64 {
	return real(q.beta)*real(q.beta) + imag(q.beta)*imag(q.beta)
}

// State returns a read-only snapshot of the amplitudes.
func (q *Qubit) State() QubitState {
	return QubitState{Alpha: q.alpha, Beta: q.beta}
}

/*
QubitState is the immutable view of a qubit handed to callers. It is a
value copy; mutating it never touches the register.
*/
type QubitState struct {
	Alpha complex128
	Beta  complex128
}

// ProbabilityZero is |alpha|².
func (s QubitState) ProbabilityZero() float64 {
	return real(s.Alpha)*real(s.Alpha) + imag(s.Alpha)*imag(s.Alpha)
}

// ProbabilityOne is |beta|².
func (s QubitState) ProbabilityOne() float64 {
	return real(s.Beta)*real(s.Beta) + imag(s.Beta)*imag(s.Beta)
}

// ApproxEqual reports whether two states match component by component
// within epsilon.
func (s QubitState) ApproxEqual(other QubitState, epsilon float64) bool {
	return math.Abs(real(s.Alpha)-real(other.Alpha)) <= epsilon &&
		math.Abs(imag(s.Alpha)-imag(other.Alpha)) <= epsilon &&
		math.Abs(real(s.Beta)-real(other.Beta)) <= epsilon &&
		math.Abs(imag(s.Beta)-imag(other.Beta)) <= epsilon
}
