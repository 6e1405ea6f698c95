package optional

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Option holds a value of type T that may be absent.
// The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a possibly-nil pointer into an Option.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value and whether it is present.
// An absent Option yields the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the contained value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Or returns the contained value, or the result of fn when absent.
// fn is only invoked on absence.
func (o Option[T]) Or(fn func() T) T {
	if !o.ok {
		return fn()
	}
	return o.value
}

// Ptr returns a pointer to a copy of the contained value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// MarshalJSON encodes an absent Option as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Numeric covers the built-in numeric types with an additive identity.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// OrZero returns the contained number, or zero when absent.
func OrZero[T Numeric](o Option[T]) T {
	return o.OrElse(0)
}

// OrEmptyString returns the contained string, or "" when absent.
func OrEmptyString[T ~string](o Option[T]) T {
	var empty T
	return o.OrElse(empty)
}

// OrEmptySlice returns the contained slice, or a nil (empty) slice when absent.
func OrEmptySlice[E any](o Option[[]E]) []E {
	return o.OrElse(nil)
}

// IsEmptyOrAbsent reports whether the string is absent or empty.
func IsEmptyOrAbsent[T ~string](o Option[T]) bool {
	v, ok := o.Get()
	return !ok || len(v) == 0
}

// IsPresentNonEmpty reports whether the string is present and non-empty.
func IsPresentNonEmpty[T ~string](o Option[T]) bool {
	return !IsEmptyOrAbsent(o)
}

// IsEmptyOrAbsentSlice reports whether the slice is absent or has no elements.
func IsEmptyOrAbsentSlice[E any](o Option[[]E]) bool {
	v, ok := o.Get()
	return !ok || len(v) == 0
}

// IsPresentNonEmptySlice reports whether the slice is present and non-empty.
func IsPresentNonEmptySlice[E any](o Option[[]E]) bool {
	return !IsEmptyOrAbsentSlice(o)
}

// Presence trims the contained string and returns None when the Option is
// absent or the trimmed value is empty, otherwise Some of the trimmed value.
func Presence(o Option[string]) Option[string] {
	v, ok := o.Get()
	if !ok {
		return None[string]()
	}
	return PresenceOf(v)
}

// PresenceOf wraps s as Some of its trimmed value, or None when s is blank.
func PresenceOf(s string) Option[string] {
	s = strings.TrimSpace(s)
	if s == "" {
		return None[string]()
	}
	return Some(s)
}
