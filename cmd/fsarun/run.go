package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/definition"
	"github.com/atlekbai/automata/graph"
	"github.com/atlekbai/automata/guards"
	"github.com/atlekbai/automata/snapshot"
)

// outcome is the result of consuming one input line.
type outcome struct {
	input  string
	result *automata.ConsumptionResult[rune]
	err    error
}

// runner loads an automaton over runes and consumes inputs with it.
type runner struct {
	cfg    Config
	logger *slog.Logger
	out    io.Writer
}

// loadDefinition reads the definition file, choosing the format by extension.
func loadDefinition(path string) (*definition.Definition, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return definition.LoadFile(path)
	case ".graphml", ".xml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return graph.ReadGraphML(f)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return snapshot.Decode(data)
	}
}

func (r *runner) build() (*automata.FiniteStateMachine[rune], error) {
	def, err := loadDefinition(r.cfg.Definition)
	if err != nil {
		return nil, err
	}
	m, err := definition.Build(def, guards.NewRuneResolver(), automata.WithLogger[rune](r.logger))
	if err != nil {
		return nil, err
	}
	r.logger.Debug("automaton loaded",
		"definition", r.cfg.Definition,
		"states", len(def.States),
		"transitions", len(def.Transitions))
	return m, nil
}

func (r *runner) render(m *automata.FiniteStateMachine[rune]) error {
	info := m.Info()
	switch r.cfg.Render {
	case "dot":
		_, err := fmt.Fprintln(r.out, graph.UmlDotGraph(info))
		return err
	case "mermaid":
		direction := graph.LeftToRight
		_, err := fmt.Fprintln(r.out, graph.MermaidGraph(info, &direction))
		return err
	case "graphml":
		return graph.WriteGraphML(r.out, info)
	case "yaml":
		data, err := definition.Marshal(definition.Capture(info))
		if err != nil {
			return err
		}
		_, err = r.out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown render format %q", r.cfg.Render)
	}
}

func (r *runner) writeSnapshot(m *automata.FiniteStateMachine[rune]) error {
	data, err := snapshot.Take(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.cfg.Snapshot, data, 0o644); err != nil {
		return err
	}
	r.logger.Info("snapshot written", "path", r.cfg.Snapshot, "bytes", len(data))
	return nil
}

// consumeAll runs every input through m. The automaton is only read, so
// inputs are consumed in parallel.
func (r *runner) consumeAll(ctx context.Context, m *automata.FiniteStateMachine[rune], inputs []string) ([]outcome, error) {
	mode, err := automata.ParseMode(r.cfg.Mode)
	if err != nil {
		return nil, err
	}

	outcomes := make([]outcome, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := m.ConsumeWith(mode, guards.Runes(input))
			outcomes[i] = outcome{input: input, result: res, err: err}
			if err != nil {
				r.logger.Warn("consumption failed", "input", input, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (r *runner) report(outcomes []outcome) (rejected int, err error) {
	w := bufio.NewWriter(r.out)
	for _, o := range outcomes {
		if o.err != nil {
			rejected++
			fmt.Fprintf(w, "%q\terror\t%v\n", o.input, o.err)
			continue
		}
		verdict := "accepted"
		if !o.result.Accepted() {
			verdict = "rejected"
			rejected++
		}
		fmt.Fprintf(w, "%q\t%s\t%d\t%s\n",
			o.input, verdict, o.result.SymbolsConsumed(), o.result.LastStates())
	}
	return rejected, w.Flush()
}

// readInputs returns args, or the lines of stdin when args is empty.
func readInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var inputs []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	return inputs, scanner.Err()
}

// run executes one invocation. It returns the number of inputs that were not accepted.
func run(ctx context.Context, cfg Config, logger *slog.Logger, args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	r := &runner{cfg: cfg, logger: logger, out: stdout}

	m, err := r.build()
	if err != nil {
		return 0, err
	}
	if cfg.Snapshot != "" {
		if err := r.writeSnapshot(m); err != nil {
			return 0, err
		}
	}
	if cfg.Render != "" {
		return 0, r.render(m)
	}

	inputs, err := readInputs(args, stdin)
	if err != nil {
		return 0, err
	}
	outcomes, err := r.consumeAll(ctx, m, inputs)
	if err != nil {
		return 0, err
	}
	return r.report(outcomes)
}
