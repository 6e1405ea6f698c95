// Package settings provides a file-backed key-value store for small
// application preferences: feature flags, last-used values, simple counters.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/ext/pkg/settings"
//
//	store, err := settings.New("/path/to/prefs.yaml")
//	if err != nil {
//		// handle error
//	}
//
//	_ = store.SetBool("onboarding_done", true)
//	if store.Bool("onboarding_done") {
//		// skip onboarding
//	}
//
// Reads are total: a missing key returns the zero value of the requested
// type, never an error. Writes persist immediately unless auto-save is
// disabled, in which case call Save explicitly:
//
//	store, _ := settings.New("prefs.yaml", settings.WithAutoSave(false))
//	_ = store.SetString("theme", "dark")
//	_ = store.SetInt("volume", 7)
//	if err := store.Save(); err != nil {
//		// handle error
//	}
//
// # Formats
//
// The codec is inferred from the file extension (.json selects JSON,
// everything else YAML) and can be forced with [WithFormat]. Saves are
// atomic: the file is written to a temp path and renamed into place.
//
// # Concurrency
//
// A Store is safe for concurrent use by multiple goroutines.
//
// # Errors
//
//   - [ErrNoPath]: New was called with an empty path
//   - [ErrUnsupportedFormat]: an unknown Format value was configured
package settings
