package qsim

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// GateType identifies a gate from the fixed supported set.
type GateType string

const (
	GateX    GateType = "X"
	GateY    GateType = "Y"
	GateZ    GateType = "Z"
	GateH    GateType = "H"
	GateS    GateType = "S"
	GateT    GateType = "T"
	GateRX   GateType = "RX"
	GateRY   GateType = "RY"
	GateRZ   GateType = "RZ"
	GateCNOT GateType = "CNOT"
	GateSWAP GateType = "SWAP"
)

var (
	// ErrMissingAngle marks a rotation gate authored without its angle.
	ErrMissingAngle = errors.New("missing angle parameter")
	// ErrUnsupportedGate marks a gate type outside the supported set.
	ErrUnsupportedGate = errors.New("unsupported gate type")
	// ErrQubitOutOfRange marks a qubit index at or beyond the register size.
	ErrQubitOutOfRange = errors.New("qubit index out of range")
	// ErrCircuitExecuted marks authoring or execution attempts on a circuit
	// that already ran; Reset returns it to the authoring phase.
	ErrCircuitExecuted = errors.New("circuit already executed")
)

// Matrix is a 2×2 complex unitary.
type Matrix [2][2]complex128

// pauliX is kept at hand for the CNOT interaction, which applies it to
// the target qubit directly instead of going through the table.
var pauliX = Matrix{{0, 1}, {1, 0}}

/*
Gate describes one operation on the circuit. Control is only read for
CNOT and SWAP; Params carries the rotation angle in radians at index 0
for RX/RY/RZ and is ignored otherwise.
*/
type Gate struct {
	Type    GateType
	Target  int
	Control int
	Params  []float64

	matrix Matrix // derived once, when the gate is appended
}

// twoQubit reports whether the gate acts on a control/target pair and
// therefore has no 2×2 matrix of its own.
func (g Gate) twoQubit() bool {
	return g.Type == GateCNOT || g.Type == GateSWAP
}

// angle returns the rotation angle, or ErrMissingAngle when absent.
func (g Gate) angle() (float64, error) {
	if len(g.Params) == 0 {
		return 0, fmt.Errorf("%w: %s requires an angle in radians", ErrMissingAngle, g.Type)
	}
	return g.Params[0], nil
}

/*
gateMatrix builds the unitary for a single-qubit gate type. Rotation
gates consume the angle from Params. The matrix is derived exactly once,
at AddGate time, so editing Params after the gate is queued has no effect
on execution.
*/
func gateMatrix(g Gate) (Matrix, error) {
	switch g.Type {
	case GateX:
		return Matrix{{0, 1}, {1, 0}}, nil
	case GateY:
		return Matrix{{0, -1i}, {1i, 0}}, nil
	case GateZ:
		return Matrix{{1, 0}, {0, -1}}, nil
	case GateH:
		h := complex(1/math.Sqrt2, 0)
		return Matrix{{h, h}, {h, -h}}, nil
	case GateS:
		return Matrix{{1, 0}, {0, 1i}}, nil
	case GateT:
		return Matrix{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}}, nil
	case GateRX:
		theta, err := g.angle()
		if err != nil {
			return Matrix{}, err
		}
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return Matrix{{c, -1i * s}, {-1i * s, c}}, nil
	case GateRY:
		theta, err := g.angle()
		if err != nil {
			return Matrix{}, err
		}
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return Matrix{{c, -s}, {s, c}}, nil
	case GateRZ:
		theta, err := g.angle()
		if err != nil {
			return Matrix{}, err
		}
		return Matrix{
			{cmplx.Exp(complex(0, -theta/2)), 0},
			{0, cmplx.Exp(complex(0, theta/2))},
		}, nil
	default:
		return Matrix{}, fmt.Errorf("%w: %q", ErrUnsupportedGate, g.Type)
	}
}
