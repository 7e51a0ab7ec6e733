package system

import (
	"errors"
	"testing"

	"github.com/specialistvlad/schematicgo/internal/app"
	"github.com/specialistvlad/schematicgo/internal/schematic"
	"github.com/specialistvlad/schematicgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: an overflowing number stops the run before anything is rendered
func TestErrorHandling_OverflowFailsRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"ok.txt":  "12*3\n",
		"big.txt": "18446744073709551616*1\n",
		"run.hcl": `
schematic "ok" {
  path = "ok.txt"
}

schematic "big" {
  path = "big.txt"
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "run.hcl")

	// --- Assert ---
	require.Error(t, result.Err)
	assert.True(t, errors.Is(result.Err, schematic.ErrNumericOverflow))
	var overflow *schematic.OverflowError
	require.True(t, errors.As(result.Err, &overflow))
	assert.Equal(t, 0, overflow.Column)
	assert.Equal(t, 0, overflow.Row)
	assert.Empty(t, result.Output)
	testutil.AssertSchematicAnalysed(t, result, "ok")
}

// Test for: a ratio product too large for uint64 is reported, not wrapped
func TestErrorHandling_RatioOverflowFailsRun(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"big.txt": "4294967296*4294967296\n"}, "big.txt")

	require.Error(t, result.Err)
	assert.True(t, errors.Is(result.Err, schematic.ErrNumericOverflow))
	assert.Contains(t, result.Err.Error(), `failed to compute gear_ratio for schematic "big"`)
}

// Test for: every failed expectation is reported after all results render
func TestErrorHandling_ExpectationsAreJoined(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"engine.txt": "12*3\n",
		"run.hcl": `
schematic "first" {
  path   = "engine.txt"
  expect = 1
}

schematic "second" {
  path   = "engine.txt"
  expect = 36
}

schematic "third" {
  path      = "engine.txt"
  aggregate = "part_sum"
  expect    = 2
}
`,
	}

	result := testutil.RunIntegrationTest(t, files, "run.hcl")

	require.Error(t, result.Err)
	assert.Equal(t, "first: 36\nsecond: 36\nthird: 15\n", result.Output)
	assert.Contains(t, result.Err.Error(), `schematic "first": expected 1, got 36`)
	assert.Contains(t, result.Err.Error(), `schematic "third": expected 2, got 15`)
	assert.NotContains(t, result.Err.Error(), `"second"`)

	var expErr *app.ExpectationError
	require.True(t, errors.As(result.Err, &expErr))
	assert.Equal(t, "first", expErr.Name)
}
