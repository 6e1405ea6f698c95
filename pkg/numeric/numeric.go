package numeric

import "math"

// Float covers the built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Real covers every built-in numeric type these helpers operate on.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians[T Float](deg T) T {
	return deg * T(math.Pi) / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees[T Float](rad T) T {
	return rad * 180 / T(math.Pi)
}

// Clamp constrains v to the inclusive [low, high] range.
// Comparisons run in a fixed order: high is checked first, then low.
// With an inverted range (low > high) the result is therefore high when
// v > high, otherwise low.
func Clamp[T Real](v, low, high T) T {
	if v > high {
		return high
	}
	if v < low {
		return low
	}
	return v
}

// InRange reports whether low <= v <= high, inclusive on both ends.
func InRange[T Real](v, low, high T) bool {
	return v >= low && v <= high
}

// MilesToMeters converts a distance in miles to meters.
func MilesToMeters[T Real](mi T) T {
	// A non-constant conversion is required: the untyped constant 1609 is
	// not representable by every type in Real (e.g. int8).
	m := 1609
	return mi * T(m)
}

// MegabytesToBytes converts a size in megabytes to bytes.
func MegabytesToBytes[T Real](mb T) T {
	// Non-constant conversion for the same reason as MilesToMeters.
	b := 1024 * 1024
	return mb * T(b)
}

// RoundTo rounds v to the given number of decimal places, half away from zero.
func RoundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// Places rounds v to the given number of decimal places like [RoundTo],
// except that places below 1 round to the nearest whole number.
func Places(v float64, places int) float64 {
	if places < 1 {
		return math.Round(v)
	}
	return RoundTo(v, places)
}
