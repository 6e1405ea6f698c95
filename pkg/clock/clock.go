package clock

import (
	"fmt"
	"math"
)

// HMS is a whole-unit breakdown of a duration given in seconds.
// Invariant: 0 <= Minutes < 60, 0 <= Seconds < 60, and
// Hours*3600 + Minutes*60 + Seconds equals the whole-second magnitude
// of the decomposed total.
type HMS struct {
	Hours   int
	Minutes int
	Seconds int
}

// Decompose splits totalSeconds into whole hours, minutes, and seconds.
// The fractional part is discarded, not rounded, and negative totals
// decompose their absolute value; the sign is a rendering concern (see
// [ClockFormat]). NaN and infinite inputs decompose to the zero HMS, and
// magnitudes beyond the int range saturate at math.MaxInt seconds.
func Decompose(totalSeconds float64) HMS {
	if math.IsNaN(totalSeconds) || math.IsInf(totalSeconds, 0) {
		return HMS{}
	}
	return DecomposeInt(wholeSeconds(math.Abs(totalSeconds)))
}

// DecomposeInt splits a whole-second total into hours, minutes, and seconds.
// Negative totals decompose their absolute value; math.MinInt, whose
// magnitude is not representable, saturates at math.MaxInt.
func DecomposeInt(totalSeconds int) HMS {
	if totalSeconds < 0 {
		if totalSeconds == math.MinInt {
			totalSeconds = math.MaxInt
		} else {
			totalSeconds = -totalSeconds
		}
	}
	return HMS{
		Hours:   totalSeconds / 3600,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}

// wholeSeconds truncates v to a whole-second int. Converting an
// out-of-range float to int is implementation-specific, so the bounds are
// checked on the float side and the result saturates at the int range.
func wholeSeconds(v float64) int {
	v = math.Trunc(v)
	if v >= math.MaxInt {
		return math.MaxInt
	}
	if v <= math.MinInt {
		return math.MinInt
	}
	return int(v)
}

// ClockFormat renders totalSeconds as "H:MM:SS" when at least one whole hour
// is present, otherwise "M:SS". Minutes and seconds are zero-padded to two
// digits; hours are never padded. Negative totals format their absolute value
// with a single leading minus sign. NaN and infinite inputs render as "0:00",
// and magnitudes beyond the int range saturate at math.MaxInt seconds.
func ClockFormat(totalSeconds float64) string {
	if math.IsNaN(totalSeconds) || math.IsInf(totalSeconds, 0) {
		return "0:00"
	}
	return ClockFormatInt(wholeSeconds(totalSeconds))
}

// ClockFormatInt renders a whole-second total in clock format.
// See [ClockFormat] for the exact shape.
func ClockFormatInt(totalSeconds int) string {
	var sign string
	if totalSeconds < 0 {
		sign = "-"
	}

	hms := DecomposeInt(totalSeconds)
	if hms.Hours > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, hms.Hours, hms.Minutes, hms.Seconds)
	}
	return fmt.Sprintf("%s%d:%02d", sign, hms.Minutes, hms.Seconds)
}
