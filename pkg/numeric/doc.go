// Package numeric provides small generic helpers for scalar values: angle
// and unit conversion, range clamping and checking, and decimal rounding.
//
// All functions are pure and total over finite input:
//
//	numeric.Clamp(15, 0, 10)          // 10
//	numeric.InRange(5, 0, 10)         // true
//	numeric.DegreesToRadians(180.0)   // π
//	numeric.RoundTo(1.23556789, 3)    // 1.236
//
// Rounding is half away from zero at the requested decimal scale. Clamp does
// not validate its range; the comparison order for inverted ranges is
// documented on [Clamp].
package numeric
