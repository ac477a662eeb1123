// Package fixnum provides a signed 24.8 fixed-point number type.
// All simulation positions and velocities use it instead of floats so that
// sub-pixel motion is bit-identical across platforms and runs.
package fixnum

import (
	"fmt"
	"math"
)

// FracBits is the number of fractional bits in a Num.
const FracBits = 8

// One is the Num representation of the integer 1.
const One Num = 1 << FracBits

// Num is a fixed-point value backed by an int32: 24 integer bits and
// 8 fractional bits. Addition and subtraction are plain integer ops;
// overflow wraps with native int32 semantics.
type Num int32

// FromInt converts an integer pixel value to a Num.
func FromInt(v int) Num {
	return Num(v) << FracBits
}

// FromFloat converts a float to the nearest representable Num.
// Used only at configuration load time; the simulation itself never
// touches floating point.
func FromFloat(v float64) Num {
	return Num(math.Round(v * float64(One)))
}

// Floor truncates toward negative infinity and returns the integer part.
// Arithmetic shift keeps this correct for negative values.
func (n Num) Floor() int {
	return int(n >> FracBits)
}

// MulInt multiplies by an integer scalar.
func (n Num) MulInt(v int) Num {
	return n * Num(v)
}

// Div divides by another Num.
func (n Num) Div(d Num) Num {
	return Num((int64(n) << FracBits) / int64(d))
}

// Float converts back to a float64, for diagnostics only.
func (n Num) Float() float64 {
	return float64(n) / float64(One)
}

func (n Num) String() string {
	return fmt.Sprintf("%g", n.Float())
}

// Vec2 is a pair of fixed-point coordinates. Components are independent;
// there are no invariants tying X and Y together.
type Vec2 struct {
	X, Y Num
}

// V2 builds a Vec2 from integer pixel coordinates.
func V2(x, y int) Vec2 {
	return Vec2{X: FromInt(x), Y: FromInt(y)}
}

// Floor returns both components floored to integer pixels.
func (v Vec2) Floor() (x, y int) {
	return v.X.Floor(), v.Y.Floor()
}
