package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jo/hyperwood/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "command only",
			args: []string{"bom"},
			want: &app.Config{
				Command:     "bom",
				Args:        []string{},
				ConfigPaths: []string{"hef.hcl"},
				Format:      "json",
			},
		},
		{
			name: "long filename before command",
			args: []string{"-filename", "bench.hef", "requirements"},
			want: &app.Config{
				Command:     "requirements",
				Args:        []string{},
				InputPath:   "bench.hef",
				ConfigPaths: []string{"hef.hcl"},
				Format:      "json",
			},
		},
		{
			name: "options after command",
			args: []string{"parameters", "-f", "bench.hef", "-format", "YAML", "-log-level", "debug"},
			want: &app.Config{
				Command:     "parameters",
				Args:        []string{},
				InputPath:   "bench.hef",
				ConfigPaths: []string{"hef.hcl"},
				Format:      "yaml",
				LogLevel:    "debug",
			},
		},
		{
			name: "eval with expression",
			args: []string{"-stock", "pine", "eval", "length_total * 2", "-config", "settings"},
			want: &app.Config{
				Command:     "eval",
				Args:        []string{"length_total * 2"},
				ConfigPaths: []string{"settings"},
				Stock:       "pine",
				Format:      "json",
			},
		},
		{
			name: "serve without settings",
			args: []string{"-config", "", "-listen", ":9000", "serve"},
			want: &app.Config{
				Command: "serve",
				Args:    []string{},
				Listen:  ":9000",
				Format:  "json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "requirements")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"no command", []string{}, "missing command"},
		{"unknown flag", []string{"--bogus", "bom"}, "flag provided but not defined: -bogus"},
		{"unknown command", []string{"render"}, `unknown command "render"`},
		{"eval without expression", []string{"eval"}, "takes 1 argument(s), got 0"},
		{"extra argument", []string{"bom", "extra"}, "takes 0 argument(s), got 1"},
		{"bad format", []string{"-format", "xml", "variant"}, "invalid format"},
		{"bad log level", []string{"-log-level", "loud", "bom"}, "invalid log-level"},
		{"bad log format", []string{"-log-format", "xml", "bom"}, "invalid log-format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
