package qsim

import "time"

// EventKind discriminates the records emitted during ExecuteCircuit.
type EventKind int

const (
	EventGateApplied EventKind = iota
	EventMeasurementPerformed
	EventCircuitExecuted
)

func (k EventKind) String() string {
	switch k {
	case EventGateApplied:
		return "gate-applied"
	case EventMeasurementPerformed:
		return "measurement-performed"
	case EventCircuitExecuted:
		return "circuit-executed"
	default:
		return "unknown"
	}
}

/*
Event is one synchronous observation record. Gate events carry the gate
and the target qubit's state before and after application; measurement
events carry the measured qubit and its collapsed bit; the final
circuit-executed event carries a snapshot of the whole register.

Events fire inline, in the exact order the gates and measurements were
authored. They are never buffered, batched, or reordered.
*/
type Event struct {
	Kind EventKind
	Time time.Time

	// Gate events
	Gate   Gate
	Qubit  int
	Before QubitState
	After  QubitState

	// Measurement events
	Result int

	// Circuit-executed
	States []QubitState
}

// Observer receives events during circuit execution. Observers run on
// the executing goroutine; a slow observer slows execution.
type Observer func(Event)
