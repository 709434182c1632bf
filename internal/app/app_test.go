package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jo/hyperwood/hef"
	"github.com/jo/hyperwood/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader returns fixed settings and records the paths it was asked for.
type stubLoader struct {
	settings *config.Settings
	err      error
	paths    []string
}

func (l *stubLoader) Load(_ context.Context, paths ...string) (*config.Settings, error) {
	l.paths = paths
	if l.err != nil {
		return nil, l.err
	}
	if l.settings == nil {
		return config.NewSettings(), nil
	}
	return l.settings, nil
}

const benchHEF = hef.MagicFormat + "\n" +
	hef.MagicVersion + "\n" +
	hef.MagicSite + "\n" +
	"Test\n" +
	`{"width":40}` + "\n" +
	`{"x":1,"y":1,"z":1}` + "\n" +
	`{"slats":1}` + "\n" +
	"1\n" +
	"beam\n" +
	"0 0 0 3 0 0 5 0\n"

func newTestApp(t *testing.T, cfg Config, settings *config.Settings, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	a, err := NewApp(context.Background(), Streams{In: strings.NewReader(input), Out: out, Err: errOut}, validated, &stubLoader{settings: settings})
	require.NoError(t, err)
	return a, out, errOut
}

func TestNewApp_PassesConfigPathsToLoader(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Command: CommandBOM, ConfigPaths: []string{"a.hcl", "conf.d"}})
	require.NoError(t, err)

	settings := config.NewSettings()
	settings.Listen = ":9090"
	loader := &stubLoader{settings: settings}
	a, err := NewApp(context.Background(), Streams{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}, cfg, loader)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.hcl", "conf.d"}, loader.paths)
	assert.Same(t, settings, a.Settings())
}

func TestNewApp_LoaderError(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Command: CommandBOM})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = NewApp(context.Background(), Streams{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}, cfg, &stubLoader{err: boom})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to load settings")
}

func TestNewApp_InvalidSettingsLogging(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Command: CommandBOM})
	require.NoError(t, err)

	settings := config.NewSettings()
	settings.LogLevel = "loud"
	_, err = NewApp(context.Background(), Streams{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}, cfg, &stubLoader{settings: settings})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log-level "loud"`)
}

func TestNewApp_UnknownStock(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Command: CommandBOM, Stock: "oak"})
	require.NoError(t, err)

	_, err = NewApp(context.Background(), Streams{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}, cfg, &stubLoader{})
	require.ErrorIs(t, err, config.ErrUnknownStock)
}

func TestNewApp_LogLevelFromSettings(t *testing.T) {
	t.Parallel()

	settings := config.NewSettings()
	settings.LogLevel = "debug"
	settings.LogFormat = "json"

	_, _, errOut := newTestApp(t, Config{Command: CommandBOM}, settings, benchHEF)

	// The settings file switched on debug logging in JSON.
	require.Contains(t, errOut.String(), `"msg":"Logger configured."`)
}

func TestNewApp_FlagsOverrideSettings(t *testing.T) {
	t.Parallel()

	settings := config.NewSettings()
	settings.LogLevel = "debug"

	_, _, errOut := newTestApp(t, Config{Command: CommandBOM, LogLevel: "error"}, settings, benchHEF)
	require.Empty(t, errOut.String())
}
