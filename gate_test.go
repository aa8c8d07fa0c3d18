package qsim

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGateMatrix(t *testing.T) {
	Convey("Given the gate matrix table", t, func() {
		Convey("When building the Hadamard matrix", func() {
			m, err := gateMatrix(Gate{Type: GateH})
			So(err, ShouldBeNil)

			h := 1 / math.Sqrt2
			So(real(m[0][0]), ShouldAlmostEqual, h)
			So(real(m[0][1]), ShouldAlmostEqual, h)
			So(real(m[1][0]), ShouldAlmostEqual, h)
			So(real(m[1][1]), ShouldAlmostEqual, -h)
		})

		Convey("When building the Pauli matrices", func() {
			x, err := gateMatrix(Gate{Type: GateX})
			So(err, ShouldBeNil)
			So(x, ShouldResemble, Matrix{{0, 1}, {1, 0}})

			y, err := gateMatrix(Gate{Type: GateY})
			So(err, ShouldBeNil)
			So(y, ShouldResemble, Matrix{{0, -1i}, {1i, 0}})

			z, err := gateMatrix(Gate{Type: GateZ})
			So(err, ShouldBeNil)
			So(z, ShouldResemble, Matrix{{1, 0}, {0, -1}})
		})

		Convey("When building the phase gates", func() {
			s, err := gateMatrix(Gate{Type: GateS})
			So(err, ShouldBeNil)
			So(s, ShouldResemble, Matrix{{1, 0}, {0, 1i}})

			tm, err := gateMatrix(Gate{Type: GateT})
			So(err, ShouldBeNil)
			So(real(tm[1][1]), ShouldAlmostEqual, math.Sqrt2/2)
			So(imag(tm[1][1]), ShouldAlmostEqual, math.Sqrt2/2)
		})

		Convey("When building a rotation with an angle", func() {
			m, err := gateMatrix(Gate{Type: GateRY, Params: []float64{math.Pi / 4}})
			So(err, ShouldBeNil)
			So(real(m[0][0]), ShouldAlmostEqual, math.Cos(math.Pi/8))
			So(real(m[0][1]), ShouldAlmostEqual, -math.Sin(math.Pi/8))
			So(real(m[1][0]), ShouldAlmostEqual, math.Sin(math.Pi/8))
			So(real(m[1][1]), ShouldAlmostEqual, math.Cos(math.Pi/8))
		})

		Convey("When a rotation gate is missing its angle", func() {
			for _, gt := range []GateType{GateRX, GateRY, GateRZ} {
				_, err := gateMatrix(Gate{Type: gt})
				So(errors.Is(err, ErrMissingAngle), ShouldBeTrue)
			}
		})

		Convey("When the gate type is unknown", func() {
			_, err := gateMatrix(Gate{Type: GateType("TOFFOLI")})
			So(errors.Is(err, ErrUnsupportedGate), ShouldBeTrue)
		})
	})
}
