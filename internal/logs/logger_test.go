package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesToDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Logger.Printf("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), "[notedays] ") || !strings.Contains(string(content), "hello from test") {
		t.Errorf("unexpected log content: %q", content)
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
