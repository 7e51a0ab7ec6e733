package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSchematicAnalysed checks the log output within a HarnessResult to
// confirm that the named schematic went through aggregation.
func AssertSchematicAnalysed(t *testing.T, result *HarnessResult, name string) {
	t.Helper()

	found := false
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Schematic analysed.") && strings.Contains(line, fmt.Sprintf("schematic=%s ", name)) {
			found = true
			break
		}
	}
	require.True(t, found, "expected log output for schematic '%s' was not found in logs", name)
}
