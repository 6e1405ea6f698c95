package appdir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ext/pkg/appdir"
)

func TestEmptyAppName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lookup func(string) (string, error)
	}{
		{name: "config", lookup: appdir.Config},
		{name: "cache", lookup: appdir.Cache},
		{name: "data", lookup: appdir.Data},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.lookup("")
			assert.ErrorIs(t, err, appdir.ErrEmptyApp)
		})
	}
}

// Setenv tests cannot run in parallel; each pins its base directory
// through the XDG environment.

func TestConfig(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := appdir.Config("myapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "myapp"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err, "directory must be created")
	assert.True(t, info.IsDir())
}

func TestCache(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := appdir.Cache("myapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "myapp"), dir)
}

func TestData(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir, err := appdir.Data("myapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "myapp"), dir)
}

func TestRepeatedLookupIsIdempotent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first, err := appdir.Config("myapp")
	require.NoError(t, err)

	second, err := appdir.Config("myapp")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
