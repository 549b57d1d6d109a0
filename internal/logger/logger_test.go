package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathEnv(t *testing.T) {
	t.Setenv("HYPERION_LOG_FILE", "/tmp/h.log")
	if p, err := Path(); err != nil || p != "/tmp/h.log" {
		t.Fatalf("Path = %q, %v, want /tmp/h.log", p, err)
	}

	t.Setenv("HYPERION_LOG_FILE", "")
	t.Setenv("HYPERION_CONFIG_HOME", "/tmp/cfg")
	if p, err := Path(); err != nil || p != "/tmp/cfg/hyperion.log" {
		t.Fatalf("Path = %q, %v, want /tmp/cfg/hyperion.log", p, err)
	}
}

func TestDebugFromEnv(t *testing.T) {
	for value, want := range map[string]bool{"": false, "0": false, "false": false, "1": true, "yes": true} {
		t.Setenv("HYPERION_DEBUG", value)
		if got := DebugFromEnv(); got != want {
			t.Fatalf("DebugFromEnv(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestHelpersAreNoOpsBeforeInit(t *testing.T) {
	Close()
	Debug("dropped")
	Info("dropped")
	Warn("dropped")
	Error("dropped", "k", 1)
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hyperion.log")
	t.Setenv("HYPERION_LOG_FILE", path)
	if err := Init(false); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("hidden at info level")
	Warn("save failed", "path", "/x")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "logger initialized") || !strings.Contains(text, "save failed") {
		t.Fatalf("log missing entries:\n%s", text)
	}
	if strings.Contains(text, "hidden at info level") {
		t.Fatalf("debug entry written at info level:\n%s", text)
	}
}
