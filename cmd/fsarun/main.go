// Command fsarun loads an automaton over runes and reports which inputs it accepts.
//
// Usage:
//
//	fsarun -d mod3.yaml 000 0000
//	echo 0101 | fsarun -d even.yaml -mode nondeterministic
//	fsarun -d mod3.yaml -render dot > mod3.dot
//
// Every flag may also be set through FSARUN_* environment variables or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.StringVar(&cfg.Definition, "d", cfg.Definition, "automaton definition (.yaml, .graphml or snapshot)")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "traversal mode: deterministic or nondeterministic")
	flag.StringVar(&cfg.Render, "render", cfg.Render, "render the automaton as dot, mermaid, graphml or yaml")
	flag.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "write a binary snapshot of the automaton to this path")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "inputs consumed in parallel")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	flag.Parse()

	logger := newLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rejected, err := run(ctx, cfg, logger, flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(2)
	}
	if rejected > 0 {
		os.Exit(1)
	}
}
