package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestCLI() *CLI {
	return New(io.Discard, log.ErrorLevel)
}

// testCtx carries the quiet test logger the way PersistentPreRun does for
// real invocations.
func testCtx(c *CLI) context.Context {
	return withLogger(context.Background(), c.Logger)
}

func TestRunRenderDOT(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(input, []byte("web api\napi db 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{format: formatDOT}
	c := newTestCLI()
	if err := c.runRender(testCtx(c), input, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "graph.dot"))
	if err != nil {
		t.Fatalf("expected derived output file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "graph {") {
		t.Errorf("DOT output should open an undirected graph, got:\n%s", out)
	}
	for _, label := range []string{"web", "api", "db"} {
		if !strings.Contains(out, label) {
			t.Errorf("DOT output missing node label %q", label)
		}
	}
}

func TestRunRenderDirected(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(input, []byte("a b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{format: formatDOT, directed: true}
	c := newTestCLI()
	if err := c.runRender(testCtx(c), input, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "graph.dot"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "digraph {") || !strings.Contains(out, "->") {
		t.Errorf("directed render should emit a digraph with arrows, got:\n%s", out)
	}
}

// The config's directed setting must reach the store a file loads into.
func TestRenderCommandDirectedFromConfig(t *testing.T) {
	confDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confDir)
	appDir := filepath.Join(confDir, appName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte("directed = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(input, []byte("a b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newTestCLI()
	cmd := c.RootCommand()
	cmd.SetArgs([]string{"render", input, "--format", "dot"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render command error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "graph.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "digraph {") {
		t.Errorf("config directed=true should render a digraph, got:\n%s", data)
	}
}

func TestRunRenderExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("a b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "custom.dot")
	opts := &renderOpts{format: formatDOT, output: output}
	c := newTestCLI()
	if err := c.runRender(testCtx(c), input, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected output at %s: %v", output, err)
	}
}

func TestRunRenderMissingInput(t *testing.T) {
	opts := &renderOpts{format: formatDOT}
	c := newTestCLI()
	err := c.runRender(testCtx(c), filepath.Join(t.TempDir(), "nope.txt"), opts)
	if err == nil {
		t.Fatal("runRender() should fail for a missing input file")
	}
}

func TestRenderCommandRejectsBadFormat(t *testing.T) {
	c := newTestCLI()
	cmd := c.renderCommand()
	cmd.SetArgs([]string{"whatever.txt", "--format", "gif"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err == nil {
		t.Fatal("render should reject unknown formats")
	}
}
