package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ResolvesAgainstDataDir(t *testing.T) {
	reg, err := Default(context.Background(), "data")
	require.NoError(t, err)

	testCases := []struct {
		input       string
		displayName string
		path        string
	}{
		{input: "chicago", displayName: "Chicago", path: filepath.Join("data", "chicago.csv")},
		{input: "  New York City ", displayName: "New York City", path: filepath.Join("data", "new_york_city.csv")},
		{input: "WASHINGTON", displayName: "Washington", path: filepath.Join("data", "washington.csv")},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			src, ok := reg.Lookup(tc.input)
			require.True(t, ok)
			assert.Equal(t, tc.displayName, src.DisplayName)
			assert.Equal(t, tc.path, src.Path)
		})
	}

	assert.Equal(t, []string{"Chicago", "New York City", "Washington"}, reg.Cities())
}

func TestLookup_UnknownCity(t *testing.T) {
	reg, err := Default(context.Background(), ".")
	require.NoError(t, err)

	_, ok := reg.Lookup("boston")
	assert.False(t, ok)
	_, ok = reg.Lookup("")
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		sources []Source
	}{
		{name: "no sources", sources: nil},
		{name: "empty city", sources: []Source{{City: " ", Path: "x.csv"}}},
		{name: "missing file", sources: []Source{{City: "chicago"}}},
		{name: "duplicate", sources: []Source{{City: "Chicago", Path: "a.csv"}, {City: "chicago", Path: "b.csv"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.sources...)
			require.Error(t, err)
		})
	}
}

func TestLoad_FromDirectory(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`
source "Boston" {
  file = "${data_dir}/boston.csv"
}
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`
source "denver" {
  file         = "/srv/denver.csv"
  display_name = "Mile High"
}
`), 0644))

	// --- Act ---
	reg, err := Load(context.Background(), dir, "/data")

	// --- Assert ---
	require.NoError(t, err)
	src, ok := reg.Lookup("boston")
	require.True(t, ok)
	assert.Equal(t, filepath.Clean("/data/boston.csv"), src.Path)
	assert.Equal(t, []string{"Boston", "Mile High"}, reg.Cities())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), filepath.Join(dir, "missing.hcl"), ".")
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte(`source "x" {`), 0644))
	_, err = Load(context.Background(), bad, ".")
	require.ErrorContains(t, err, "failed to parse HCL file")

	noFile := filepath.Join(dir, "nofile.hcl")
	require.NoError(t, os.WriteFile(noFile, []byte(`source "x" {}`), 0644))
	_, err = Load(context.Background(), noFile, ".")
	require.ErrorContains(t, err, "failed to decode HCL file")
}
