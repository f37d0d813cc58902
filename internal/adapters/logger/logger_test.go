package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grid/internal/adapters/logger"
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing to a buffer, with colors disabled for stable output.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("applied 3 steps")

	g := goldie.New(t)
	g.Assert(t, "info", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("skipping step 2 of budget")

	g := goldie.New(t)
	g.Assert(t, "warn", buf.Bytes())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	err := zerr.Wrap(domain.ErrCircularDependency, "formula would create a reference cycle")
	err = zerr.With(err, "position", "A1")
	err = zerr.With(err, "cycle", "A1 -> B1 -> A1")

	lg, buf := newTestLogger(t)
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain_zerr", buf.Bytes())
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("no such file or directory")
	err := fmt.Errorf("failed to load script: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain_stdlib", buf.Bytes())
}

func TestLogger_Error_Multiline(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.New("line1\nline2"))

	g := goldie.New(t)
	g.Assert(t, "error_multiline", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom",
		},
		{
			name: "metadata keys are sorted",
			err: func() error {
				e := zerr.New("invalid script")
				e = zerr.With(e, "step", 2)
				e = zerr.With(e, "path", "a.yaml")
				return e
			}(),
			want: "Error: invalid script (path=a.yaml, step=2)",
		},
		{
			name: "metadata on a stdlib cause folds into its wrapper",
			err: func() error {
				inner := zerr.With(errors.New("permission denied"), "path", "a.yaml")
				return zerr.Wrap(inner, "failed to read script")
			}(),
			want: "Error: failed to read script (path=a.yaml)\n\n  Caused by:\n    → permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatError(tt.err))
		})
	}
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.Wrap(domain.ErrFormulaSyntax, "unexpected token"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	errField, ok := record["error"].(map[string]any)
	require.True(t, ok, "zerr errors log as a group")
	assert.Equal(t, "unexpected token", errField["msg"])
	assert.Equal(t, map[string]any{"msg": "formula syntax error"}, errField["cause"])
	assert.NotContains(t, buf.String(), "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Warn("careful")

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"msg":"careful"`)
}
