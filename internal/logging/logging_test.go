package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New("", "debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatal("expected nop logger")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todomatic.log")
	logger, err := New(path, "bogus-level")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("task added")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "task added") {
		t.Fatalf("expected message in log, got %q", raw)
	}
}
