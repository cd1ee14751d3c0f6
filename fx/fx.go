// Package fx implements 16.16 signed fixed-point arithmetic.
//
// Every position, velocity, and acceleration in the simulation is an
// F32: upper 16 bits integer, lower 16 bits fraction. The representable
// range is roughly -32768.0 to +32767.99998. All operations are integer
// only and bit-exact across platforms, which the physics tests rely on
// (frame-exact terminal velocity and jump apex).
package fx

// F32 is a 16.16 signed fixed-point value.
type F32 int32

const (
	// Shift is the fractional bit width.
	Shift = 16
	// One is 1.0 in 16.16 form.
	One F32 = 1 << Shift
	// Half is 0.5 in 16.16 form.
	Half F32 = 1 << (Shift - 1)
	// FracMask isolates the fractional bits.
	FracMask F32 = One - 1
)

// FromInt converts an integer pixel count to fixed point.
func FromInt(i int) F32 { return F32(i) << Shift }

// ToInt truncates toward negative infinity (arithmetic shift).
func ToInt(f F32) int { return int(f >> Shift) }

// ToIntRound rounds to the nearest integer.
func ToIntRound(f F32) int { return int((f + Half) >> Shift) }

// FromFloat converts a float64 to fixed point. Intended for constants
// and test expectations only; the simulation itself never touches
// floating point.
func FromFloat(f float64) F32 { return F32(f * float64(One)) }

// Float returns the float64 value, for logging and rendering only.
func Float(f F32) float64 { return float64(f) / float64(One) }

// Mul multiplies two fixed-point values using a 64-bit intermediate so
// the product cannot overflow before the shift.
func Mul(a, b F32) F32 { return F32((int64(a) * int64(b)) >> Shift) }

// Div divides a by b, pre-shifting the numerator into 64 bits to keep
// the fractional precision.
func Div(a, b F32) F32 { return F32((int64(a) << Shift) / int64(b)) }

// Abs returns the magnitude of a.
func Abs(a F32) F32 {
	if a < 0 {
		return -a
	}
	return a
}

// Min returns the smaller of a and b.
func Min(a, b F32) F32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b F32) F32 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi F32) F32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t (t in [0, One]).
func Lerp(a, b, t F32) F32 { return a + Mul(t, b-a) }

// Sqrt computes the fixed-point square root with Newton's method on the
// value pre-shifted by the fractional width. Converges within 16
// iterations; non-positive input returns 0.
func Sqrt(a F32) F32 {
	if a <= 0 {
		return 0
	}

	// sqrt(a_real) in 16.16 form is the integer sqrt of a<<16.
	val := uint64(a) << Shift

	var guess uint64
	if val > 1<<32 {
		guess = 1 << 24
	} else {
		guess = 1 << 16
	}

	for i := 0; i < 16; i++ {
		if guess == 0 {
			break
		}
		next := (guess + val/guess) >> 1
		if next >= guess {
			break
		}
		guess = next
	}

	return F32(guess)
}

// Vec2 is a fixed-point 2D vector. Y increases downward.
type Vec2 struct {
	X, Y F32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// AABB is an axis-aligned bounding box stored as half-extents from a
// center point.
type AABB struct {
	HalfW, HalfH F32
}

// Overlaps reports whether two center+half-extent boxes intersect.
func Overlaps(posA Vec2, boxA AABB, posB Vec2, boxB AABB) bool {
	dx := Abs(posA.X - posB.X)
	dy := Abs(posA.Y - posB.Y)
	return dx < boxA.HalfW+boxB.HalfW && dy < boxA.HalfH+boxB.HalfH
}
