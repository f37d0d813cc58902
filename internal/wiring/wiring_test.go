package wiring_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grid/internal/app"
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
	_ "go.trai.ch/grid/internal/wiring"
)

func TestGraft_ResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}

func TestGraft_ResolvesAdapters(t *testing.T) {
	ctx := context.Background()

	parser, _, err := graft.ExecuteFor[ports.FormulaParser](ctx)
	require.NoError(t, err)
	f, err := parser.Parse("1+2")
	require.NoError(t, err)
	assert.Equal(t, "1+2", f.Expression())

	loader, _, err := graft.ExecuteFor[ports.ScriptLoader](ctx)
	require.NoError(t, err)
	assert.NotNil(t, loader)

	resolver, _, err := graft.ExecuteFor[ports.ScriptResolver](ctx)
	require.NoError(t, err)
	assert.NotNil(t, resolver)

	tracer, _, err := graft.ExecuteFor[ports.Tracer](ctx)
	require.NoError(t, err)
	assert.NotNil(t, tracer)
}

func TestGraft_WiredAppEvaluates(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	err = components.App.Eval(context.Background(), []string{"A1=4", "B1==A1/2"}, app.RunOptions{
		Output: &out,
		Print:  domain.PrintValues,
	})
	require.NoError(t, err)
	assert.Equal(t, "4\t2\n", out.String())
}
