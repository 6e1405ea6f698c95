package optional_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ext/pkg/optional"
)

func TestSomeNone(t *testing.T) {
	t.Parallel()

	some := optional.Some(5)
	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	none := optional.None[int]()
	assert.False(t, none.IsSome())
	assert.True(t, none.IsNone())

	v, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var o optional.Option[string]
	assert.True(t, o.IsNone())
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	n := 42
	assert.Equal(t, optional.Some(42), optional.FromPtr(&n))
	assert.Equal(t, optional.None[int](), optional.FromPtr[int](nil))
}

func TestPtr(t *testing.T) {
	t.Parallel()

	p := optional.Some("x").Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)

	assert.Nil(t, optional.None[string]().Ptr())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, optional.Some(5).OrElse(9))
	assert.Equal(t, 9, optional.None[int]().OrElse(9))
}

func TestOr(t *testing.T) {
	t.Parallel()

	called := false
	got := optional.Some("a").Or(func() string {
		called = true
		return "b"
	})
	assert.Equal(t, "a", got)
	assert.False(t, called, "fallback must not run when a value is present")

	assert.Equal(t, "b", optional.None[string]().Or(func() string { return "b" }))
}

func TestOrZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, optional.OrZero(optional.None[int]()))
	assert.Equal(t, 5, optional.OrZero(optional.Some(5)))
	assert.Equal(t, int64(0), optional.OrZero(optional.None[int64]()))
	assert.Equal(t, 0.0, optional.OrZero(optional.None[float64]()))
	assert.Equal(t, 2.5, optional.OrZero(optional.Some(2.5)))
}

func TestOrEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", optional.OrEmptyString(optional.None[string]()))
	assert.Equal(t, "hi", optional.OrEmptyString(optional.Some("hi")))

	assert.Empty(t, optional.OrEmptySlice(optional.None[[]int]()))
	assert.Equal(t, []int{1, 2}, optional.OrEmptySlice(optional.Some([]int{1, 2})))
}

func TestIsEmptyOrAbsent(t *testing.T) {
	t.Parallel()

	assert.True(t, optional.IsEmptyOrAbsent(optional.None[string]()))
	assert.True(t, optional.IsEmptyOrAbsent(optional.Some("")))
	assert.False(t, optional.IsEmptyOrAbsent(optional.Some("a")))

	assert.False(t, optional.IsPresentNonEmpty(optional.None[string]()))
	assert.True(t, optional.IsPresentNonEmpty(optional.Some("a")))

	assert.True(t, optional.IsEmptyOrAbsentSlice(optional.None[[]int]()))
	assert.True(t, optional.IsEmptyOrAbsentSlice(optional.Some([]int{})))
	assert.False(t, optional.IsEmptyOrAbsentSlice(optional.Some([]int{1})))
	assert.True(t, optional.IsPresentNonEmptySlice(optional.Some([]int{1})))
}

func TestPresence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    optional.Option[string]
		expected optional.Option[string]
	}{
		{name: "absent stays absent", input: optional.None[string](), expected: optional.None[string]()},
		{name: "blank becomes absent", input: optional.Some("   "), expected: optional.None[string]()},
		{name: "tabs and newlines become absent", input: optional.Some("\t\n "), expected: optional.None[string]()},
		{name: "value is trimmed", input: optional.Some(" a "), expected: optional.Some("a")},
		{name: "inner whitespace kept", input: optional.Some(" a b "), expected: optional.Some("a b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, optional.Presence(tt.input))
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  optional.Option[string] `json:"name"`
		Count optional.Option[int]    `json:"count"`
	}

	data, err := json.Marshal(payload{Name: optional.Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","count":null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"count":3}`), &decoded))
	assert.True(t, decoded.Name.IsNone())
	assert.Equal(t, optional.Some(3), decoded.Count)
}
