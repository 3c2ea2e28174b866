package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLogger_NoFile(t *testing.T) {
	l, err := NewLogger("")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tubekit.log")
	l, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Warn("warned")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !bytes.Contains(b, []byte("WARN")) {
		t.Errorf("missing WARN line: %s", string(b))
	}
}

func TestClose_Idempotent(t *testing.T) {
	l, err := NewLogger(filepath.Join(t.TempDir(), "t.log"))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
