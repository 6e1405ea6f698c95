// Package optional provides a generic present-or-absent value and helpers
// that turn absence into a defined default instead of a nil check.
//
// Absence is a normal input everywhere in this package, never an error:
//
//	import "github.com/dmitrymomot/ext/pkg/optional"
//
//	count := optional.OrZero(optional.None[int]())      // 0
//	name := optional.OrEmptyString(optional.Some("ab")) // "ab"
//
// Presence applies the stricter notion used for text: a string is present
// only when it is non-absent and non-empty after trimming whitespace:
//
//	optional.PresenceOf("   ")  // None
//	optional.PresenceOf(" a ")  // Some("a")
//
// Option implements json.Marshaler and json.Unmarshaler, mapping absence
// to null in both directions.
package optional
