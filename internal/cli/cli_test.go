package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/bikeshare/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		shouldExit bool
		exitCode   int
	}{
		{
			name: "defaults",
			args: nil,
			want: &app.Config{DataDir: ".", LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "all flags",
			args: []string{"-data-dir", "/srv/data", "-sources", "cities.hcl", "-log-format", "json", "-log-level", "DEBUG"},
			want: &app.Config{DataDir: "/srv/data", SourcesPath: "cities.hcl", LogFormat: "json", LogLevel: "debug"},
		},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{name: "unknown flag", args: []string{"--nope"}, exitCode: 2},
		{name: "positional argument", args: []string{"chicago"}, exitCode: 2},
		{name: "invalid log level", args: []string{"-log-level", "verbose"}, exitCode: 2},
		{name: "invalid log format", args: []string{"-log-format", "yaml"}, exitCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.exitCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
				assert.Equal(t, tc.exitCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
