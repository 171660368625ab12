package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mihklz/observer/internal/sample"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("example", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), nil, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, &ExampleConfig{
		Capacity:  2,
		Observers: 3,
		Initial:   sample.Value1,
		Next:      sample.Value2,
		LogLevel:  "info",
	}, cfg)
}

func TestLoad_Flags(t *testing.T) {
	args := []string{"-n", "5", "-o", "4", "-v", "value2", "-next", "value1", "-strict", "-l", "debug"}

	cfg, err := Load(newFlagSet(), args, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, 4, cfg.Observers)
	assert.Equal(t, sample.Value2, cfg.Initial)
	assert.Equal(t, sample.Value1, cfg.Next)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestLoad_EnvOverridesFlags проверяет приоритет окружения над флагами
func TestLoad_EnvOverridesFlags(t *testing.T) {
	env := envFrom(map[string]string{
		"CAPACITY":      "7",
		"OBSERVERS":     "1",
		"INITIAL_VALUE": "value2",
		"NEXT_VALUE":    "value1",
		"STRICT":        "true",
		"LOG_LEVEL":     "warn",
	})

	cfg, err := Load(newFlagSet(), []string{"-n", "5", "-l", "debug"}, env)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Capacity)
	assert.Equal(t, 1, cfg.Observers)
	assert.Equal(t, sample.Value2, cfg.Initial)
	assert.Equal(t, sample.Value1, cfg.Next)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	env := envFrom(map[string]string{
		"CAPACITY":   "many",
		"NEXT_VALUE": "value9",
		"STRICT":     "maybe",
	})

	cfg, err := Load(newFlagSet(), nil, env)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Capacity)
	assert.Equal(t, sample.Value2, cfg.Next)
	assert.False(t, cfg.Strict)
}

// TestLoad_File проверяет чтение YAML-файла
func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
capacity: 4
observers: 6
initial: value2
next: value1
strict: true
log_level: error
`)

	cfg, err := Load(newFlagSet(), []string{"-c", path, "-o", "2"}, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Capacity)
	assert.Equal(t, 2, cfg.Observers, "explicit flag wins over file")
	assert.Equal(t, sample.Value2, cfg.Initial)
	assert.Equal(t, sample.Value1, cfg.Next)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoad_FileFromEnv(t *testing.T) {
	path := writeConfig(t, "capacity: 9\n")

	cfg, err := Load(newFlagSet(), nil, envFrom(map[string]string{"CONFIG": path}))
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Capacity)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "unknown flag", args: []string{"-x"}},
		{name: "bad sample flag", args: []string{"-v", "value3"}},
		{name: "missing file", args: []string{"-c", filepath.Join(os.TempDir(), "does-not-exist.yaml")}},
		{name: "negative capacity", args: []string{"-n", "-1"}},
		{name: "negative observers from env", env: map[string]string{"OBSERVERS": "-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newFlagSet(), tt.args, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "initial: value7\n")

	_, err := Load(newFlagSet(), []string{"-c", path}, envFrom(nil))
	assert.Error(t, err)
}
