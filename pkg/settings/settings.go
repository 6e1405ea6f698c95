package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Errors.
var (
	ErrNoPath            = errors.New("settings: path required")
	ErrUnsupportedFormat = errors.New("settings: unsupported format")
)

// Format selects the on-disk codec.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// Store is a file-backed key-value store for small app preferences.
// Reads return zero values for missing keys; absence is never an error.
type Store struct {
	mu       sync.RWMutex
	path     string
	format   Format
	autoSave bool
	values   map[string]any
}

// Option configures the Store.
type Option func(*Store)

// WithFormat overrides the codec inferred from the file extension.
func WithFormat(f Format) Option {
	return func(s *Store) {
		s.format = f
	}
}

// WithAutoSave controls whether every write persists immediately.
// Enabled by default; disable it for batched writes followed by Save.
func WithAutoSave(v bool) Option {
	return func(s *Store) {
		s.autoSave = v
	}
}

// New creates a Store bound to path and loads the existing file if present.
// A missing file is not an error; the store starts empty.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	s := &Store{
		path:     path,
		format:   formatForPath(path),
		autoSave: true,
		values:   make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func formatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("settings: read %q: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}

	switch s.format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s.values)
	case FormatJSON:
		err = json.Unmarshal(data, &s.values)
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("settings: decode %q: %w", s.path, err)
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	return nil
}

// Bool returns the boolean stored under key, or false when missing
// or of another type.
func (s *Store) Bool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, _ := s.values[key].(bool)
	return v
}

// String returns the string stored under key, or "" when missing
// or of another type.
func (s *Store) String(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, _ := s.values[key].(string)
	return v
}

// Int returns the integer stored under key, or 0 when missing or of another
// type. JSON decodes numbers as float64; whole floats convert cleanly.
func (s *Store) Int(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch v := s.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Has reports whether key exists in the store.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// SetBool stores a boolean under key.
func (s *Store) SetBool(key string, v bool) error {
	return s.set(key, v)
}

// SetString stores a string under key.
func (s *Store) SetString(key, v string) error {
	return s.set(key, v)
}

// SetInt stores an integer under key.
func (s *Store) SetInt(key string, v int) error {
	return s.set(key, v)
}

// Delete removes key from the store. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	if s.autoSave {
		return s.Save()
	}
	return nil
}

func (s *Store) set(key string, v any) error {
	s.mu.Lock()
	s.values[key] = v
	s.mu.Unlock()

	if s.autoSave {
		return s.Save()
	}
	return nil
}

// Save writes the current values to disk atomically (temp file + rename).
func (s *Store) Save() error {
	s.mu.RLock()
	var (
		data []byte
		err  error
	)
	switch s.format {
	case FormatYAML:
		data, err = yaml.Marshal(s.values)
	case FormatJSON:
		data, err = json.MarshalIndent(s.values, "", "  ")
	default:
		err = ErrUnsupportedFormat
	}
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("settings: write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("settings: rename %q: %w", s.path, err)
	}
	return nil
}
