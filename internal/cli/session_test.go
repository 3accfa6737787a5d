package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadStoreEmptyPath(t *testing.T) {
	logger := newLogger(io.Discard, log.ErrorLevel)

	s, err := loadStore(logger, true, "")
	if err != nil {
		t.Fatalf("loadStore() = %v", err)
	}
	if s.NodeCount() != 0 {
		t.Errorf("scratch store should be empty, got %d nodes", s.NodeCount())
	}
	if !s.Directed() {
		t.Error("scratch store should honor the directed setting")
	}
}

func TestLoadStoreMissingFileIsScratch(t *testing.T) {
	logger := newLogger(io.Discard, log.ErrorLevel)

	s, err := loadStore(logger, false, filepath.Join(t.TempDir(), "new.txt"))
	if err != nil {
		t.Fatalf("loadStore() = %v", err)
	}
	if s.NodeCount() != 0 {
		t.Errorf("missing file should open a scratch store, got %d nodes", s.NodeCount())
	}
}

// Loaded files carry the configured direction mode, same as scratch graphs.
func TestLoadStoreFileHonorsDirected(t *testing.T) {
	logger := newLogger(io.Discard, log.ErrorLevel)
	path := filepath.Join(t.TempDir(), "graph.txt")
	if err := os.WriteFile(path, []byte("a b\nb c 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, directed := range []bool{false, true} {
		s, err := loadStore(logger, directed, path)
		if err != nil {
			t.Fatalf("loadStore(directed=%v) = %v", directed, err)
		}
		if s.Directed() != directed {
			t.Errorf("Directed() = %v, want %v", s.Directed(), directed)
		}
		if s.NodeCount() != 3 || s.EdgeCount() != 2 {
			t.Errorf("loaded %d nodes / %d edges, want 3/2", s.NodeCount(), s.EdgeCount())
		}
	}
}
