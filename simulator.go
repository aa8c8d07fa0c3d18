package qsim

import (
	"fmt"
	"log"
	"time"
)

// Phase tracks where a Simulator is in its authoring → execution → query
// lifecycle.
type Phase int

const (
	PhaseAuthoring Phase = iota
	PhaseExecuting
	PhaseExecuted
)

/*
Circuit is the authored program: the ordered gate list and the ordered
measurement queue. Both run strictly in append order.
*/
type Circuit struct {
	QubitCount   int
	Gates        []Gate
	Measurements []Measurement
}

/*
Simulator owns a register of independent qubits and the circuit authored
against it. A circuit moves through three phases: authoring (AddGate and
AddMeasurement append, nothing computes), execution (one ExecuteCircuit
call applies every gate then every measurement, in append order), and
query (any number of state reads, in any order). Reset returns the
simulator to the authoring phase with every qubit back in the ground
state.

Simulator is not safe for concurrent use. Callers sharing one across
goroutines must serialize every call themselves; the engine itself is
purely synchronous and holds no locks.
*/
type Simulator struct {
	qubitCount   int
	register     *Register
	gates        []Gate
	measurements []Measurement
	results      map[int]int
	observers    []Observer
	phase        Phase
	config       *Config
	metrics      *Metrics
}

/*
NewSimulator creates a simulator with qubitCount qubits, all in the
ground state. config may be nil, in which case NewConfig defaults apply.
*/
func NewSimulator(qubitCount int, config *Config) (*Simulator, error) {
	if qubitCount < 1 {
		return nil, fmt.Errorf("qubit count must be positive, got %d", qubitCount)
	}

	if config == nil {
		config = NewConfig()
	}
	if config.Random == nil {
		config.Random = NewConfig().Random
	}

	return &Simulator{
		qubitCount: qubitCount,
		register:   NewRegister(qubitCount),
		results:    make(map[int]int),
		config:     config,
		metrics:    newMetrics(),
	}, nil
}

// Subscribe registers an observer for execution events. Observers fire
// synchronously, in registration order, for every event.
func (s *Simulator) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Simulator) emit(e Event) {
	e.Time = time.Now()
	for _, o := range s.observers {
		o(e)
	}
}

/*
AddGate derives the gate's matrix and appends it to the circuit. The
matrix is fixed at this point; later edits to Params have no effect on
execution. Rotation gates without an angle and unknown gate types fail
here, before anything is queued. Target and control indices are
deliberately not checked until ExecuteCircuit.
*/
func (s *Simulator) AddGate(g Gate) error {
	if s.phase == PhaseExecuted {
		return fmt.Errorf("%w: Reset before authoring more gates", ErrCircuitExecuted)
	}

	if !g.twoQubit() {
		m, err := gateMatrix(g)
		if err != nil {
			return err
		}
		g.matrix = m
	}

	s.gates = append(s.gates, g)
	return nil
}

/*
AddMeasurement queues a measurement of the given qubit. The index is
validated at execution time, not here; a bad index surfaces as an
out-of-range error from ExecuteCircuit.
*/
func (s *Simulator) AddMeasurement(qubit int, basis Basis) error {
	if s.phase == PhaseExecuted {
		return fmt.Errorf("%w: Reset before authoring more measurements", ErrCircuitExecuted)
	}

	s.measurements = append(s.measurements, Measurement{Qubit: qubit, Basis: basis})
	return nil
}

/*
ExecuteCircuit runs every queued gate, then every queued measurement, in
append order, emitting a gate-applied or measurement-performed event for
each and one final circuit-executed event carrying the register snapshot.

The first out-of-range gate operand or measurement index aborts execution
with an error. A circuit that has executed (successfully or not) stays in
the executed phase until Reset.
*/
func (s *Simulator) ExecuteCircuit() error {
	if s.phase == PhaseExecuted {
		return fmt.Errorf("%w: Reset before executing again", ErrCircuitExecuted)
	}

	s.phase = PhaseExecuting
	start := time.Now()

	for i := range s.gates {
		if err := s.applyGate(&s.gates[i]); err != nil {
			s.phase = PhaseExecuted
			return err
		}
	}

	for i := range s.measurements {
		m := &s.measurements[i]
		if !s.register.valid(m.Qubit) {
			s.phase = PhaseExecuted
			log.Printf("measurement of qubit %d outside register of %d", m.Qubit, s.qubitCount)
			return fmt.Errorf("%w: measurement qubit %d (register size %d)", ErrQubitOutOfRange, m.Qubit, s.qubitCount)
		}

		q := s.register.qubit(m.Qubit)
		before := q.State()
		result := measure(q, s.config.Random())
		m.Result = result
		m.Performed = true
		s.results[m.Qubit] = result
		s.metrics.recordMeasurement()

		s.emit(Event{
			Kind:   EventMeasurementPerformed,
			Qubit:  m.Qubit,
			Before: before,
			After:  q.State(),
			Result: result,
		})
	}

	s.phase = PhaseExecuted
	s.metrics.recordExecution(start)
	s.emit(Event{Kind: EventCircuitExecuted, States: s.register.States()})
	return nil
}

func (s *Simulator) applyGate(g *Gate) error {
	if !s.register.valid(g.Target) {
		log.Printf("gate %s targets qubit %d outside register of %d", g.Type, g.Target, s.qubitCount)
		return fmt.Errorf("%w: target %d (register size %d)", ErrQubitOutOfRange, g.Target, s.qubitCount)
	}

	switch g.Type {
	case GateCNOT:
		return s.applyCNOT(g)
	case GateSWAP:
		return s.applySWAP(g)
	default:
		q := s.register.qubit(g.Target)
		before := q.State()
		q.apply(g.matrix)
		s.metrics.recordGate(g.Type)
		s.emit(Event{
			Kind:   EventGateApplied,
			Gate:   *g,
			Qubit:  g.Target,
			Before: before,
			After:  q.State(),
		})
		return nil
	}
}

/*
applyCNOT applies the approximate two-qubit interaction: when the control
qubit's |1⟩ probability is strictly above 0.5, the target gets the X
matrix; otherwise nothing happens. The qubits stay independent amplitude
pairs, so this threshold rule does not create real entanglement.
*/
func (s *Simulator) applyCNOT(g *Gate) error {
	if !s.register.valid(g.Control) {
		log.Printf("gate %s control qubit %d outside register of %d", g.Type, g.Control, s.qubitCount)
		return fmt.Errorf("%w: control %d (register size %d)", ErrQubitOutOfRange, g.Control, s.qubitCount)
	}

	target := s.register.qubit(g.Target)
	before := target.State()

	if s.register.qubit(g.Control).probabilityOne() > 0.5 {
		target.apply(pauliX)
	}

	s.metrics.recordGate(g.Type)
	s.emit(Event{
		Kind:   EventGateApplied,
		Gate:   *g,
		Qubit:  g.Target,
		Before: before,
		After:  target.State(),
	})
	return nil
}

// applySWAP exchanges the two qubits' amplitude pairs. The emitted event
// carries the target qubit's before/after state.
func (s *Simulator) applySWAP(g *Gate) error {
	if !s.register.valid(g.Control) {
		log.Printf("gate %s control qubit %d outside register of %d", g.Type, g.Control, s.qubitCount)
		return fmt.Errorf("%w: control %d (register size %d)", ErrQubitOutOfRange, g.Control, s.qubitCount)
	}

	a := s.register.qubit(g.Target)
	b := s.register.qubit(g.Control)
	before := a.State()

	a.alpha, b.alpha = b.alpha, a.alpha
	a.beta, b.beta = b.beta, a.beta

	s.metrics.recordGate(g.Type)
	s.emit(Event{
		Kind:   EventGateApplied,
		Gate:   *g,
		Qubit:  g.Target,
		Before: before,
		After:  a.State(),
	})
	return nil
}

// GetQubitState returns a snapshot of one qubit's amplitudes.
func (s *Simulator) GetQubitState(i int) (QubitState, error) {
	if !s.register.valid(i) {
		return QubitState{}, fmt.Errorf("%w: %d (register size %d)", ErrQubitOutOfRange, i, s.qubitCount)
	}
	return s.register.qubit(i).State(), nil
}

// GetAllStates snapshots the whole register in qubit order.
func (s *Simulator) GetAllStates() []QubitState {
	return s.register.States()
}

// GetBlochVector projects one qubit's current state onto the Bloch
// sphere.
func (s *Simulator) GetBlochVector(i int) (BlochVector, error) {
	state, err := s.GetQubitState(i)
	if err != nil {
		return BlochVector{}, err
	}
	return Bloch(state), nil
}

// GetCircuit returns a copy of the authored circuit; mutating the copy
// does not affect the simulator.
func (s *Simulator) GetCircuit() Circuit {
	gates := make([]Gate, len(s.gates))
	copy(gates, s.gates)
	measurements := make([]Measurement, len(s.measurements))
	copy(measurements, s.measurements)

	return Circuit{
		QubitCount:   s.qubitCount,
		Gates:        gates,
		Measurements: measurements,
	}
}

// GetMeasurementResults returns qubit index → collapsed bit for every
// measurement executed so far.
func (s *Simulator) GetMeasurementResults() map[int]int {
	results := make(map[int]int, len(s.results))
	for k, v := range s.results {
		results[k] = v
	}
	return results
}

// Phase reports the simulator's lifecycle phase.
func (s *Simulator) Phase() Phase {
	return s.phase
}

// QubitCount is the size of the register.
func (s *Simulator) QubitCount() int {
	return s.qubitCount
}

// Metrics exposes the execution counters.
func (s *Simulator) Metrics() *Metrics {
	return s.metrics
}

/*
Reset returns the simulator to the authoring phase: every qubit back to
the ground state, gate and measurement lists cleared, measurement results
dropped. Subscribed observers and accumulated metrics survive a reset.
*/
func (s *Simulator) Reset() {
	s.register.Reset()
	s.gates = nil
	s.measurements = nil
	s.results = make(map[int]int)
	s.phase = PhaseAuthoring
}
