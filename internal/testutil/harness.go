package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/schematicgo/internal/app"
	"github.com/specialistvlad/schematicgo/internal/hclconfig"
	"github.com/specialistvlad/schematicgo/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Harness is a temporary directory of test files plus the buffers an app
// run against them writes to.
type Harness struct {
	Root string
	Out  *SafeBuffer
	Logs *SafeBuffer
}

// NewHarness writes files (relative name -> content) below a fresh
// temporary directory.
func NewHarness(t *testing.T, files map[string]string) *Harness {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return &Harness{Root: root, Out: &SafeBuffer{}, Logs: &SafeBuffer{}}
}

// Path resolves name against the harness root.
func (h *Harness) Path(name string) string {
	return filepath.Join(h.Root, name)
}

// Run builds the app for cfg and runs it until it returns. cfg.InputPath is
// relative to the harness root. Run is safe to call from a goroutine other
// than the test's own.
func (h *Harness) Run(ctx context.Context, cfg app.Config, modules ...registry.Module) *HarnessResult {
	cfg.InputPath = h.Path(cfg.InputPath)
	cfg.RunFile = hclconfig.IsRunFile(cfg.InputPath)
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	result := &HarnessResult{}
	defer func() {
		result.Output = h.Out.String()
		result.LogOutput = h.Logs.String()
	}()

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = err
		return result
	}
	testApp, err := app.NewApp(h.Out, h.Logs, appConfig, hclconfig.NewLoaderWithEnv(map[string]string{}), modules...)
	if err != nil {
		result.Err = err
		return result
	}
	result.App = testApp
	result.Err = testApp.Run(ctx)
	return result
}

// RunIntegrationTest writes files into a temporary directory and runs the
// app once against input, a path relative to that directory.
func RunIntegrationTest(t *testing.T, files map[string]string, input string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithConfig(context.Background(), t, files, app.Config{InputPath: input}, modules...)
}

// RunIntegrationTestWithConfig is RunIntegrationTest with caller supplied
// settings.
func RunIntegrationTestWithConfig(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	h := NewHarness(t, files)
	result := h.Run(ctx, cfg, modules...)
	if os.Getenv("SCHEMATICGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
