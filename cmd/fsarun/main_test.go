package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/automata/snapshot"
)

const evenZerosYAML = `name: even-zeros
start: even
final: [even]
states: [even, odd]
transitions:
  - {from: even, to: odd, guard: "eq:0"}
  - {from: odd, to: even, guard: "eq:0"}
  - {from: even, to: even, guard: "eq:1"}
  - {from: odd, to: odd, guard: "eq:1"}
`

const overlappingYAML = `start: s
final: [q1]
states: [s, q1, q2, q3]
transitions:
  - {from: s, to: q2, guard: "eq:a"}
  - {from: s, to: q1, guard: "range:a-c"}
  - {from: s, to: q3, guard: "in:ab"}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testConfig(definition string) Config {
	return Config{
		Definition: definition,
		Mode:       "deterministic",
		Workers:    2,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FSARUN_DEFINITION", "even.yaml")
	t.Setenv("FSARUN_WORKERS", "8")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "even.yaml", cfg.Definition)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "deterministic", cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := writeFile(t, ".env", "FSARUN_MODE=nfa\nFSARUN_RENDER=dot\n")
	t.Setenv("FSARUN_MODE", "")
	t.Setenv("FSARUN_RENDER", "")
	os.Unsetenv("FSARUN_MODE")
	os.Unsetenv("FSARUN_RENDER")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "nfa", cfg.Mode)
	assert.Equal(t, "dot", cfg.Render)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("FSARUN_WORKERS", "many")

	_, err := loadConfig()
	assert.ErrorIs(t, err, ErrParsingConfig)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no definition", mutate: func(c *Config) { c.Definition = "" }},
		{name: "mode", mutate: func(c *Config) { c.Mode = "quantum" }},
		{name: "render", mutate: func(c *Config) { c.Render = "png" }},
		{name: "workers", mutate: func(c *Config) { c.Workers = 0 }},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("even.yaml")
			require.NoError(t, cfg.Validate())
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := testConfig("")
	assert.ErrorIs(t, cfg.Validate(), ErrNoDefinition)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig("x")
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	logger := newLogger(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"component":"fsarun"`)
}

func TestRun_Consume(t *testing.T) {
	cfg := testConfig(writeFile(t, "even.yaml", evenZerosYAML))

	var out bytes.Buffer
	rejected, err := run(context.Background(), cfg, discard(),
		[]string{"0110", "01", "01001123450000"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, rejected)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "\"0110\"\taccepted\t4\t{even}", lines[0])
	assert.Equal(t, "\"01\"\trejected\t2\t{odd}", lines[1])
	assert.Equal(t, "\"01001123450000\"\trejected\t7\t{<error>}", lines[2])
}

func TestRun_Stdin(t *testing.T) {
	cfg := testConfig(writeFile(t, "even.yaml", evenZerosYAML))

	var out bytes.Buffer
	rejected, err := run(context.Background(), cfg, discard(), nil, strings.NewReader("00\n1\n"), &out)
	require.NoError(t, err)
	assert.Zero(t, rejected)
	assert.Equal(t, "\"00\"\taccepted\t2\t{even}\n\"1\"\taccepted\t1\t{even}\n", out.String())
}

func TestRun_Modes(t *testing.T) {
	cfg := testConfig(writeFile(t, "overlap.yaml", overlappingYAML))

	var out bytes.Buffer
	rejected, err := run(context.Background(), cfg, discard(), []string{"a", "c"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, rejected)
	assert.Contains(t, out.String(), "\"a\"\terror\t")
	assert.Contains(t, out.String(), "\"c\"\taccepted\t1\t{q1}")

	cfg.Mode = "nondeterministic"
	out.Reset()
	rejected, err = run(context.Background(), cfg, discard(), []string{"a"}, nil, &out)
	require.NoError(t, err)
	assert.Zero(t, rejected)
	assert.Equal(t, "\"a\"\taccepted\t1\t{q1, q2, q3}\n", out.String())
}

func TestRun_Render(t *testing.T) {
	path := writeFile(t, "even.yaml", evenZerosYAML)

	for format, want := range map[string]string{
		"dot":     "digraph {",
		"mermaid": "stateDiagram-v2",
		"graphml": "<graphml",
		"yaml":    "states:",
	} {
		t.Run(format, func(t *testing.T) {
			cfg := testConfig(path)
			cfg.Render = format

			var out bytes.Buffer
			_, err := run(context.Background(), cfg, discard(), nil, nil, &out)
			require.NoError(t, err)
			assert.Contains(t, out.String(), want)
		})
	}
}

func TestRun_SnapshotAndFormats(t *testing.T) {
	cfg := testConfig(writeFile(t, "even.yaml", evenZerosYAML))
	cfg.Snapshot = filepath.Join(t.TempDir(), "even.fsa")

	var out bytes.Buffer
	_, err := run(context.Background(), cfg, discard(), []string{"00"}, nil, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Snapshot)
	require.NoError(t, err)
	d, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "even", d.Start)

	// The snapshot and a GraphML export both load as definitions.
	fromSnapshot := testConfig(cfg.Snapshot)
	out.Reset()
	rejected, err := run(context.Background(), fromSnapshot, discard(), []string{"00", "0"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, rejected)

	exportCfg := testConfig(cfg.Definition)
	exportCfg.Render = "graphml"
	var graphml bytes.Buffer
	_, err = run(context.Background(), exportCfg, discard(), nil, nil, &graphml)
	require.NoError(t, err)

	fromGraphML := testConfig(writeFile(t, "even.graphml", graphml.String()))
	out.Reset()
	rejected, err = run(context.Background(), fromGraphML, discard(), []string{"00", "0"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, rejected)
}

func TestRun_Errors(t *testing.T) {
	_, err := run(context.Background(), testConfig(""), discard(), nil, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoDefinition)

	_, err = run(context.Background(), testConfig(filepath.Join(t.TempDir(), "missing.yaml")), discard(), nil, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(context.Background(), testConfig(writeFile(t, "bad.yaml", "states: [a]\nstart: b\n")), discard(), nil, nil, &bytes.Buffer{})
	assert.Error(t, err)
}
