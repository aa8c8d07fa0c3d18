package qsim

/*
Register is the ordered collection of independent qubits owned by a
Simulator. Every qubit starts in the ground state |0⟩. The register is
the single owner of the mutable amplitudes; reads leave the package as
QubitState copies only.
*/
type Register struct {
	qubits []*Qubit
}

// NewRegister creates a register of size qubits, all in the ground state.
func NewRegister(size int) *Register {
	r := &Register{qubits: make([]*Qubit, size)}
	for i := range r.qubits {
		r.qubits[i] = NewQubit(1, 0)
	}
	return r
}

// Size is the number of qubits in the register.
func (r *Register) Size() int {
	return len(r.qubits)
}

// valid reports whether i addresses a qubit in this register.
func (r *Register) valid(i int) bool {
	return i >= 0 && i < len(r.qubits)
}

// qubit hands out the live qubit; package-internal so the amplitudes
// never alias outside the simulator.
func (r *Register) qubit(i int) *Qubit {
	return r.qubits[i]
}

// Reset returns every qubit to the ground state.
func (r *Register) Reset() {
	for _, q := range r.qubits {
		q.ground()
	}
}

// States snapshots the whole register in qubit order.
func (r *Register) States() []QubitState {
	states := make([]QubitState, len(r.qubits))
	for i, q := range r.qubits {
		states[i] = q.State()
	}
	return states
}
