package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := Default()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 6, opts.SmoothingWindow)
	assert.Equal(t, 0.15, opts.Tension)
	assert.Equal(t, 100*time.Millisecond, opts.LeaveDelay)
	assert.True(t, opts.Minify)
}

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts, err := Load(strings.NewReader(`
smoothingWindow: 4
decimals: -1
leaveDelay: 250ms
closed: true
stroke: "#123"
`))
	require.NoError(t, err)
	assert.Equal(t, 4, opts.SmoothingWindow)
	assert.Equal(t, -1, opts.Decimals)
	assert.Equal(t, 250*time.Millisecond, opts.LeaveDelay)
	assert.True(t, opts.Closed)
	assert.Equal(t, "#123", opts.Stroke)
	// untouched options keep their defaults
	assert.Equal(t, 0.3, opts.SimplifyTolerance)
	assert.Equal(t, "sigvg-path", opts.ClassPath)
}

func TestLoadJSON(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts, err := Parse([]byte(`{"tension": 0.2, "minify": false, "scale": 2}`))
	require.NoError(t, err)
	assert.Equal(t, 0.2, opts.Tension)
	assert.False(t, opts.Minify)
	assert.Equal(t, 2.0, opts.Scale)
}

func TestLoadEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
}

func TestLoadInvalid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, doc := range []string{
		"smoothingWindow: 0",
		"simplifyTolerance: -1",
		"decimals: -2",
		"scale: 0",
		"width: -5",
		"unknownOption: 1",
		"smoothingWindow: [1, 2]",
	} {
		_, err := Parse([]byte(doc))
		assert.True(t, errors.Is(err, ErrInvalidOption), "%q: %v", doc, err)
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	name := filepath.Join(t.TempDir(), "sigpath.yaml")
	require.NoError(t, os.WriteFile(name, []byte("crop: true\n"), 0o644))
	opts, err := LoadFile(name)
	require.NoError(t, err)
	assert.True(t, opts.Crop)
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
