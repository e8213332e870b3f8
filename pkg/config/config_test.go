package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Dir  string `yaml:"dir" toml:"dir"`
	Skip bool   `yaml:"skip" toml:"skip"`
	App  struct {
		Level string `yaml:"level" toml:"level"`
	} `yaml:"app" toml:"app"`
}

type checked struct {
	Dir string `yaml:"dir" toml:"dir"`
}

var errEmptyDir = errors.New("dir is required")

func (c *checked) Validate() error {
	if c.Dir == "" {
		return errEmptyDir
	}
	return nil
}

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "config.yaml", "dir: /tmp/d\nskip: true\napp:\n  level: debug\n")
	var cfg sample
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "/tmp/d" || !cfg.Skip || cfg.App.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "config.toml", "dir = \"/tmp/d\"\nskip = true\n\n[app]\nlevel = \"warn\"\n")
	var cfg sample
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "/tmp/d" || !cfg.Skip || cfg.App.Level != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("CONFIG_TEST_DIR", "/from/env")
	path := write(t, "config.toml", "dir = \"${CONFIG_TEST_DIR}/dailies\"\n")
	var cfg sample
	if err := Load(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != "/from/env/dailies" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "/from/env/dailies")
	}
}

func TestLoad_KeepsUnsetFields(t *testing.T) {
	path := write(t, "config.yaml", "dir: /x\n")
	cfg := sample{Skip: true}
	if err := Load(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if !cfg.Skip {
		t.Error("unset field should keep its default")
	}
}

func TestLoad_Errors(t *testing.T) {
	var cfg sample
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg); err == nil {
		t.Error("missing file should fail")
	}

	bad := write(t, "config.toml", "dir = \n")
	if err := Load(bad, &cfg); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("bad toml err = %v", err)
	}
}

func TestLoad_Validates(t *testing.T) {
	path := write(t, "config.yaml", "dir: \"\"\n")
	var cfg checked
	err := Load(path, &cfg)
	if !errors.Is(err, errEmptyDir) {
		t.Errorf("err = %v, want errEmptyDir", err)
	}
}

func TestLoadWithDefaults_MissingFile(t *testing.T) {
	cfg := checked{Dir: "/default"}
	found, err := LoadWithDefaults(filepath.Join(t.TempDir(), "none.toml"), &cfg)
	if err != nil || found {
		t.Fatalf("found = %v, err = %v", found, err)
	}
	if cfg.Dir != "/default" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "/default")
	}

	empty := checked{}
	if _, err := LoadWithDefaults("", &empty); !errors.Is(err, errEmptyDir) {
		t.Errorf("defaults should still be validated, err = %v", err)
	}
}

func TestLoadWithDefaults_Present(t *testing.T) {
	path := write(t, "config.toml", "dir = \"/file\"\n")
	cfg := checked{Dir: "/default"}
	found, err := LoadWithDefaults(path, &cfg)
	if err != nil || !found {
		t.Fatalf("found = %v, err = %v", found, err)
	}
	if cfg.Dir != "/file" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "/file")
	}
}
