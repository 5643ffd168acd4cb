package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/atlekbai/automata"
)

// Config holds the runner configuration. Values come from the environment
// (optionally via a .env file) and may be overridden by flags.
type Config struct {
	// Definition is the path of the automaton definition (.yaml, .graphml or snapshot).
	Definition string `env:"FSARUN_DEFINITION"`
	// Mode is the traversal mode: deterministic or nondeterministic.
	Mode string `env:"FSARUN_MODE" envDefault:"deterministic"`
	// Render selects an output format for the automaton instead of consuming input.
	Render string `env:"FSARUN_RENDER"`
	// Snapshot is a path to write a binary snapshot of the loaded automaton to.
	Snapshot string `env:"FSARUN_SNAPSHOT"`
	// Workers bounds the number of inputs consumed in parallel.
	Workers int `env:"FSARUN_WORKERS" envDefault:"4"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"FSARUN_LOG_LEVEL" envDefault:"info"`
	// LogFormat is text or json.
	LogFormat string `env:"FSARUN_LOG_FORMAT" envDefault:"text"`
}

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNoDefinition is returned when no definition path is configured.
	ErrNoDefinition = errors.New("no automaton definition given")
)

var renderFormats = []string{"dot", "mermaid", "graphml", "yaml"}

// loadConfig reads .env files, if present, and parses the environment.
func loadConfig(envFiles ...string) (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Definition == "" {
		return ErrNoDefinition
	}
	if _, err := automata.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Render != "" && !slices.Contains(renderFormats, c.Render) {
		return fmt.Errorf("unknown render format %q, expected one of %s", c.Render, strings.Join(renderFormats, ", "))
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, "text", "json")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
