package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grid/cmd/grid/commands"
	"go.trai.ch/grid/internal/app"
	"go.trai.ch/grid/internal/build"
	"go.trai.ch/grid/internal/core/domain"
)

type mockApp struct {
	runFunc   func(ctx context.Context, patterns []string, opts app.RunOptions) error
	evalFunc  func(ctx context.Context, assignments []string, opts app.RunOptions) error
	serveFunc func(ctx context.Context, addr string) error
}

func (m *mockApp) Run(ctx context.Context, patterns []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, patterns, opts)
	}
	return nil
}

func (m *mockApp) Eval(ctx context.Context, assignments []string, opts app.RunOptions) error {
	if m.evalFunc != nil {
		return m.evalFunc(ctx, assignments, opts)
	}
	return nil
}

func (m *mockApp) Serve(ctx context.Context, addr string) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, addr)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPatterns []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, patterns []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedPatterns = patterns
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "budget.yaml", "--keep-going", "--print", "texts", "--max-cells", "10"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.KeepGoing)
		assert.Equal(t, domain.PrintTexts, capturedOpts.Print)
		assert.Equal(t, 10, capturedOpts.MaxPrintCells)
		assert.NotNil(t, capturedOpts.Output)
		assert.Equal(t, []string{"budget.yaml"}, capturedPatterns)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, patterns []string, opts app.RunOptions) error {
				capturedOpts = opts
				assert.Empty(t, patterns)
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, capturedOpts.KeepGoing)
		assert.Equal(t, domain.PrintDefault, capturedOpts.Print)
		assert.Equal(t, app.DefaultMaxPrintCells, capturedOpts.MaxPrintCells)
	})

	t.Run("rejects unknown print mode", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "--print", "colors"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown print mode")
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "budget.yaml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Eval(t *testing.T) {
	t.Run("passes assignments through", func(t *testing.T) {
		var captured []string
		var capturedOpts app.RunOptions
		mock := &mockApp{
			evalFunc: func(_ context.Context, assignments []string, opts app.RunOptions) error {
				captured = assignments
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"eval", "-p", "both", "A1=2", "B1==A1*3"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"A1=2", "B1==A1*3"}, captured)
		assert.Equal(t, domain.PrintBoth, capturedOpts.Print)
	})

	t.Run("requires an assignment", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"eval"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Serve(t *testing.T) {
	var capturedAddr string
	mock := &mockApp{
		serveFunc: func(_ context.Context, addr string) error {
			capturedAddr = addr
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"serve", "--addr", "127.0.0.1:9000"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "127.0.0.1:9000", capturedAddr)
}

func TestCommands_JSONFlag(t *testing.T) {
	enabled := false
	cli := commands.New(&mockApp{}, commands.WithJSONSwitch(func(on bool) { enabled = on }))
	cli.SetArgs([]string{"--json", "run"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, enabled)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
