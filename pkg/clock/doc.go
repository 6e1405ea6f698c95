// Package clock decomposes second totals into hours, minutes, and seconds
// and renders them in clock format:
//
//	clock.ClockFormat(9999.3) // "2:46:39"
//	clock.ClockFormat(458)    // "7:38"
//	clock.ClockFormat(math.NaN()) // "0:00"
package clock
