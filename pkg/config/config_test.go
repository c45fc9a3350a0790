package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type validatedConfig struct {
	Port int `yaml:"port"`
}

func (c *validatedConfig) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "name: arrows\nport: 9090\n")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "arrows" {
		t.Errorf("Name = %q, want %q", cfg.Name, "arrows")
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want %d", cfg.Port, 9090)
	}
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_CONFIG_NAME", "from-env")
	path := writeFile(t, "name: ${TEST_CONFIG_NAME}\nport: 1\n")

	var cfg testConfig
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("Name = %q, want %q", cfg.Name, "from-env")
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	if err == nil {
		t.Fatal("Load() on missing file should fail")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "name: [unterminated\n")

	var cfg testConfig
	err := Load(path, &cfg)
	if err == nil {
		t.Fatal("Load() on malformed yaml should fail")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRunsValidator(t *testing.T) {
	path := writeFile(t, "port: 0\n")

	var cfg validatedConfig
	err := Load(path, &cfg)
	if err == nil {
		t.Fatal("Load() should surface validation failure")
	}
	if !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadIfExists(t *testing.T) {
	path := writeFile(t, "name: present\nport: 2\n")

	cfg := testConfig{Name: "default", Port: 1}
	loaded, err := LoadIfExists(path, &cfg)
	if err != nil {
		t.Fatalf("LoadIfExists() error = %v", err)
	}
	if !loaded {
		t.Error("LoadIfExists() = false, want true")
	}
	if cfg.Name != "present" {
		t.Errorf("Name = %q, want %q", cfg.Name, "present")
	}
}

func TestLoadIfExistsMissingFile(t *testing.T) {
	cfg := testConfig{Name: "default", Port: 1}
	loaded, err := LoadIfExists(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	if err != nil {
		t.Fatalf("LoadIfExists() error = %v", err)
	}
	if loaded {
		t.Error("LoadIfExists() = true, want false")
	}
	if cfg.Name != "default" || cfg.Port != 1 {
		t.Errorf("config modified: %+v", cfg)
	}
}
