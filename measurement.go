package qsim

/*
Basis names a measurement basis. Collapse semantics are defined for the
computational basis only; it is the zero value and the default.
*/
type Basis int

const (
	BasisComputational Basis = iota
)

func (b Basis) String() string {
	switch b {
	case BasisComputational:
		return "computational"
	default:
		return "unknown"
	}
}

/*
Measurement is one queued measurement request. Result is meaningless
until the circuit executes (Performed reports whether it has); once set
it is never rewritten for the same instance.
*/
type Measurement struct {
	Qubit     int
	Basis     Basis
	Result    int
	Performed bool
}

/*
measure samples the computational-basis outcome for a qubit and collapses
it in place. r must be uniform in [0,1). The draw is compared against the
|1⟩ probability, strictly: the boundary r == p1 resolves to 0. Collapse
discards all phase information; the post-measurement state is an exact
basis state, never a residual superposition.
*/
func measure(q *Qubit, r float64) int {
	p1 := q.probabilityOne()

	if r < p1 {
		q.alpha = 0
		q.beta = 1
		return 1
	}

	q.alpha = 1
	q.beta = 0
	return 0
}
