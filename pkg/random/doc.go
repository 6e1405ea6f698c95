// Package random provides bounded uniform integer sampling with an
// injectable source, so callers can swap in a deterministic generator
// under test. Invalid bounds report [ErrInvalidBound] instead of panicking.
package random
