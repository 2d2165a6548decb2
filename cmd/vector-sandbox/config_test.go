package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.toml")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q) failed: %v", path, err)
		}
		if cfg.Sandbox.Initial != [3]float64{1, 0, 0} || cfg.Sandbox.Store != "snapshots" || !cfg.Sandbox.Sound {
			t.Errorf("unexpected defaults: %+v", cfg.Sandbox)
		}
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.toml")
	data := []byte(`
[sandbox]
initial = [0.0, 0.0, 2.5]
kind = "Velocity"
kinds = ["Velocity", "Force"]
sound = false
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	sb := cfg.Sandbox
	if sb.Initial != [3]float64{0, 0, 2.5} {
		t.Errorf("Initial = %v", sb.Initial)
	}
	if sb.Kind != "Velocity" || len(sb.Kinds) != 2 || sb.Kinds[1] != "Force" {
		t.Errorf("kinds = %q %v", sb.Kind, sb.Kinds)
	}
	if sb.Sound {
		t.Error("Sound should be false")
	}
	// Keys absent from the file keep their defaults
	if sb.Store != "snapshots" {
		t.Errorf("Store = %q, want default", sb.Store)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "[sandbox\n",
		"short array": "[sandbox]\ninitial = [1.0, 2.0]\n",
		"wrong type":  "[sandbox]\nsound = \"yes\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
