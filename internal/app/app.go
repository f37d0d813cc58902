// Package app implements the application layer for grid.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.trai.ch/grid/internal/adapters/server" //nolint:depguard // Wired in app layer
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
	"go.trai.ch/grid/internal/engine/sheet"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxPrintCells bounds the table a single print may produce.
const DefaultMaxPrintCells = 1 << 20

// App represents the main application logic.
type App struct {
	loader   ports.ScriptLoader
	resolver ports.ScriptResolver
	parser   ports.FormulaParser
	logger   ports.Logger
	tracer   ports.Tracer
	root     string
}

// New creates a new App instance.
func New(
	loader ports.ScriptLoader,
	resolver ports.ScriptResolver,
	parser ports.FormulaParser,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:   loader,
		resolver: resolver,
		parser:   parser,
		logger:   log,
		tracer:   tracer,
		root:     ".",
	}
}

// WithRoot sets the directory script patterns are resolved against.
func (a *App) WithRoot(root string) *App {
	a.root = root
	return a
}

// RunOptions configures Run and Eval.
type RunOptions struct {
	// Output receives printed tables. Nil means os.Stdout.
	Output io.Writer
	// KeepGoing logs and skips rejected steps instead of aborting.
	KeepGoing bool
	// Print overrides the print mode of every script unless it is PrintDefault.
	Print domain.PrintMode
	// MaxPrintCells rejects printing tables with more cells. Zero means DefaultMaxPrintCells.
	MaxPrintCells int

	// multi prefixes every printed table with the script name.
	multi bool
}

// Run resolves the scripts matching patterns, loads them concurrently and
// applies each one to a fresh sheet in order.
func (a *App) Run(ctx context.Context, patterns []string, opts RunOptions) error {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	runID := uuid.NewString()
	ctx, span := a.tracer.Start(ctx, "run", ports.WithAttribute("run.id", runID))
	defer span.End()

	paths, err := a.resolver.ResolveScripts(patterns, a.root)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to resolve scripts")
	}

	scripts, err := a.loadScripts(ctx, paths)
	if err != nil {
		span.RecordError(err)
		return err
	}

	names := make([]string, len(scripts))
	for i, s := range scripts {
		names[i] = s.Name
	}
	a.tracer.EmitPlan(ctx, names)

	opts.multi = len(scripts) > 1
	for _, script := range scripts {
		if err := a.apply(ctx, script, opts); err != nil {
			span.RecordError(err)
			return zerr.With(err, "run_id", runID)
		}
	}
	return nil
}

// loadScripts loads every path concurrently, keeping the order of paths.
func (a *App) loadScripts(ctx context.Context, paths []string) ([]*domain.Script, error) {
	scripts := make([]*domain.Script, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			script, err := a.loader.Load(path)
			if err != nil {
				return zerr.Wrap(err, "failed to load script")
			}
			scripts[i] = script
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scripts, nil
}

// Eval applies inline CELL=TEXT assignments to a fresh sheet and prints it.
func (a *App) Eval(ctx context.Context, assignments []string, opts RunOptions) error {
	script := &domain.Script{Name: "eval"}
	for _, assignment := range assignments {
		step, err := ParseAssignment(assignment)
		if err != nil {
			return err
		}
		script.Steps = append(script.Steps, step)
	}
	return a.apply(ctx, script, opts)
}

// ParseAssignment parses CELL=TEXT. TEXT keeps everything after the first '=',
// so "A1==B1+1" stores the formula "=B1+1".
func ParseAssignment(s string) (domain.Step, error) {
	label, text, ok := strings.Cut(s, "=")
	if !ok {
		err := zerr.Wrap(domain.ErrInvalidAssignment, "expected CELL=TEXT")
		return domain.Step{}, zerr.With(err, "assignment", s)
	}
	pos := domain.ParsePosition(label)
	if pos == domain.PositionNone {
		err := zerr.Wrap(domain.ErrInvalidAssignment, "invalid cell label")
		return domain.Step{}, zerr.With(zerr.With(err, "assignment", s), "cell", label)
	}
	return domain.Step{Cell: pos, Text: text}, nil
}

// Serve exposes a fresh sheet over HTTP on addr until ctx is cancelled.
func (a *App) Serve(ctx context.Context, addr string) error {
	gin.SetMode(gin.ReleaseMode)
	return server.New(sheet.New(a.parser), a.logger).ListenAndServe(ctx, addr)
}

func (a *App) apply(ctx context.Context, script *domain.Script, opts RunOptions) error {
	name := script.Name
	_, span := a.tracer.Start(ctx, "script",
		ports.WithAttribute("script.name", name),
		ports.WithAttribute("script.path", script.Path),
		ports.WithAttribute("script.digest", script.Digest),
		ports.WithAttribute("script.steps", len(script.Steps)),
	)
	defer span.End()

	store := sheet.New(a.parser)
	applied, skipped := 0, 0
	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := applyStep(store, step); err != nil {
			err = zerr.With(zerr.With(err, "script", name), "step", i+1)
			if !opts.KeepGoing {
				span.RecordError(err)
				return err
			}
			skipped++
			a.logger.Warn(fmt.Sprintf("skipping step %d of %s: %v", i+1, name, err))
			continue
		}
		applied++
	}
	span.SetAttribute("script.applied", applied)
	span.SetAttribute("script.skipped", skipped)
	a.logger.Info(fmt.Sprintf("applied %d of %d steps from %s", applied, len(script.Steps), name))

	mode := opts.Print
	if mode == domain.PrintDefault {
		mode = script.Print
	}
	if err := a.print(store, name, mode, opts); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func applyStep(store *sheet.Store, step domain.Step) error {
	if step.Clear {
		return store.ClearCell(step.Cell)
	}
	return store.SetCell(step.Cell, step.Text)
}

func (a *App) print(store *sheet.Store, name string, mode domain.PrintMode, opts RunOptions) error {
	if mode == domain.PrintNone {
		return nil
	}

	limit := opts.MaxPrintCells
	if limit <= 0 {
		limit = DefaultMaxPrintCells
	}
	size := store.PrintableSize()
	if size.Rows*size.Cols > limit {
		err := zerr.Wrap(domain.ErrTableTooBig, "table exceeds the print limit")
		err = zerr.With(err, "size", fmt.Sprintf("%dx%d", size.Rows, size.Cols))
		return zerr.With(zerr.With(err, "limit", limit), "script", name)
	}

	w := opts.Output
	if w == nil {
		w = os.Stdout
	}
	if opts.multi {
		if _, err := fmt.Fprintf(w, "# %s\n", name); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}

	switch mode {
	case domain.PrintTexts:
		return store.PrintTexts(w)
	case domain.PrintBoth:
		if err := store.PrintTexts(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
		return store.PrintValues(w)
	default:
		return store.PrintValues(w)
	}
}
