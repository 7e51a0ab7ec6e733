package system

import (
	"strings"
	"testing"

	"github.com/specialistvlad/schematicgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSchematic = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

// Test for: run files in a directory are merged in path order
func TestCLI_MergesRunFiles_FromDirectoryPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"inputs/example.txt": exampleSchematic,
		"runs/a.hcl": `
schematic "gears" {
  path = "../inputs/example.txt"
}
`,
		"runs/b.hcl": `
schematic "parts" {
  path      = "../inputs/example.txt"
  aggregate = "part_sum"
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "runs")

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "gears: 467835\nparts: 4361\n", result.Output)
	testutil.AssertSchematicAnalysed(t, result, "gears")
	testutil.AssertSchematicAnalysed(t, result, "parts")
}

// Test for: a plain schematic file is analysed on its own
func TestCLI_PlainSchematicFile(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{"engine.txt": exampleSchematic}, "engine.txt")

	require.NoError(t, result.Err)
	assert.Equal(t, "467835\n", result.Output)
	testutil.AssertSchematicAnalysed(t, result, "engine")
}

// Test for: windows line endings give the same answer
func TestCLI_CRLFSchematic(t *testing.T) {
	t.Parallel()

	crlf := strings.ReplaceAll(exampleSchematic, "\n", "\r\n")

	result := testutil.RunIntegrationTest(t, map[string]string{"engine.txt": crlf}, "engine.txt")

	require.NoError(t, result.Err)
	assert.Equal(t, "467835\n", result.Output)
}
