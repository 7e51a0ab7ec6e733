package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/schematicgo/internal/schematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v uint64) *RegisteredHandler {
	return &RegisteredHandler{
		Description: "constant",
		Fn: func(ctx context.Context, tokens *schematic.Tokens, opts Options) (*Result, error) {
			return &Result{Value: v}, nil
		},
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterHandler("b", constant(2))
	r.RegisterHandler("a", constant(1))

	h, err := r.Handler("b")
	require.NoError(t, err)

	res, err := h.Fn(context.Background(), &schematic.Tokens{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Value)
	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestRegistry_UnknownName(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterHandler("gear_ratio", constant(0))

	_, err := r.Handler("nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown aggregation 'nope'")
	assert.Contains(t, err.Error(), "gear_ratio")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterHandler("x", constant(0))

	assert.PanicsWithValue(t, "aggregation handler with name 'x' already registered", func() {
		r.RegisterHandler("x", constant(1))
	})
}

func TestRegistry_NilFunctionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		New().RegisterHandler("x", &RegisteredHandler{})
	})
}
