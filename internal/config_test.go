package internal

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if !cfg.SkipWeekends {
		t.Error("weekends should be skipped by default")
	}
	if cfg.App.LogLevel != slog.LevelWarn {
		t.Errorf("log level = %v, want WARN", cfg.App.LogLevel)
	}
}

func TestConfig_EmptyDailiesDir(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.DailiesDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty dailies_dir should fail validation")
	}
}

func TestApplicationConfig_EmptyFormatDefaultsText(t *testing.T) {
	cfg := ApplicationConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty format should default to text: %v", err)
	}
	if cfg.LogFormat != LogFormatText {
		t.Errorf("format = %q, want %q", cfg.LogFormat, LogFormatText)
	}
}

func TestApplicationConfig_InvalidFormat(t *testing.T) {
	cfg := ApplicationConfig{LogFormat: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid format should fail validation")
	}
}

func TestFullConfig_AppValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.LogFormat = "logfmt"
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch app error")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := map[string]string{
		"~":                home,
		"~/.daily/dailies": filepath.Join(home, ".daily", "dailies"),
		"/abs/path":        "/abs/path",
		"rel/~/path":       "rel/~/path",
		"~other":           "~other",
	}
	for in, want := range cases {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolvedDailiesDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := NewDefaultConfig().ResolvedDailiesDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".daily", "dailies"); got != want {
		t.Errorf("got = %q, want %q", got, want)
	}
}
