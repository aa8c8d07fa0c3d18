package qsim

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeasureCollapse(t *testing.T) {
	Convey("Given a qubit in superposition", t, func() {
		h, _ := gateMatrix(Gate{Type: GateH})

		Convey("When the draw falls below p1", func() {
			q := NewQubit(1, 0)
			q.apply(h)
			result := measure(q, 0.0)

			Convey("Then it collapses to exactly |1⟩", func() {
				So(result, ShouldEqual, 1)
				So(q.State(), ShouldResemble, QubitState{Alpha: 0, Beta: 1})
			})
		})

		Convey("When the draw falls at or above p1", func() {
			q := NewQubit(1, 0)
			q.apply(h)
			result := measure(q, 0.9)

			Convey("Then it collapses to exactly |0⟩", func() {
				So(result, ShouldEqual, 0)
				So(q.State(), ShouldResemble, QubitState{Alpha: 1, Beta: 0})
			})
		})
	})

	Convey("Given the boundary draw r == p1", t, func() {
		// p1 is exactly 0.25 for beta = 1/2.
		q := NewQubit(complex(math.Sqrt(3)/2, 0), complex(0.5, 0))
		result := measure(q, 0.25)

		Convey("Then the comparison is strict and the result is 0", func() {
			So(result, ShouldEqual, 0)
			So(q.State(), ShouldResemble, QubitState{Alpha: 1, Beta: 0})
		})
	})

	Convey("Given already collapsed basis states", t, func() {
		Convey("The ground state always measures 0, even at r == 0", func() {
			q := NewQubit(1, 0)
			So(measure(q, 0.0), ShouldEqual, 0)
			So(q.State(), ShouldResemble, QubitState{Alpha: 1, Beta: 0})
		})

		Convey("The excited state always measures 1", func() {
			q := NewQubit(0, 1)
			So(measure(q, 0.999999), ShouldEqual, 1)
			So(q.State(), ShouldResemble, QubitState{Alpha: 0, Beta: 1})
		})

		Convey("Repeated measurement is stable", func() {
			q := NewQubit(0, 1)
			first := measure(q, 0.4)
			second := measure(q, 0.6)
			So(first, ShouldEqual, second)
		})
	})

	Convey("Given a phased state", t, func() {
		// i/√2 in beta: the phase must not survive collapse.
		q := NewQubit(complex(1/math.Sqrt2, 0), complex(0, 1/math.Sqrt2))

		Convey("Collapse discards the phase entirely", func() {
			result := measure(q, 0.1)
			So(result, ShouldEqual, 1)
			So(q.State(), ShouldResemble, QubitState{Alpha: 0, Beta: 1})
		})
	})
}
