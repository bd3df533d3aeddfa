package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
)

func TestLoadBytesParsesPresetAndRules(t *testing.T) {
	doc := []byte(`
preset = "recommended"

[rules.no-debugger]
enabled = false

[rules.no-empty]
severity = "error"
`)
	f, err := LoadBytes(doc)
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if !f.UsesRecommendedPreset() {
		t.Error("UsesRecommendedPreset() = false, want true")
	}
	if len(f.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(f.Rules))
	}
}

func TestOverridesAppliesDefaultsAndExplicitValues(t *testing.T) {
	disabled := false
	f := &File{
		Rules: map[string]RuleConfig{
			"no-debugger": {Enabled: &disabled},
			"no-empty": {Severity: "error"},
			"no-unused-vars": {},
		},
	}
	got := f.Overrides()

	if cfg := got["no-debugger"]; cfg.Enabled {
		t.Error("no-debugger should be disabled")
	}
	if cfg := got["no-empty"]; cfg.Severity != diagnostic.Error {
		t.Errorf("no-empty severity = %v, want Error", cfg.Severity)
	}
	if cfg := got["no-unused-vars"]; !cfg.Enabled || cfg.Severity != diagnostic.Warning {
		t.Errorf("no-unused-vars = %+v, want enabled with default Warning severity", cfg)
	}
}

func TestOverridesFallsBackToWarningOnUnrecognizedSeverity(t *testing.T) {
	f := &File{Rules: map[string]RuleConfig{"x": {Severity: "catastrophic"}}}
	got := f.Overrides()
	if got["x"].Severity != diagnostic.Warning {
		t.Errorf("unrecognized severity should default to Warning, got %v", got["x"].Severity)
	}
}

func TestOverridesReturnsPlainRulengineConfig(t *testing.T) {
	f := &File{Rules: map[string]RuleConfig{"x": {}}}
	var _ map[string]rulengine.Config = f.Overrides()
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cstlint.toml")
	if Exists(path) {
		t.Error("Exists() = true for a file that hasn't been created yet")
	}
	if err := os.WriteFile(path, []byte("preset = \"builtins\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !Exists(path) {
		t.Error("Exists() = false for a file that was just created")
	}
}

func TestLoadReadsFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cstlint.toml")
	if err := os.WriteFile(path, []byte("preset = \"recommended\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !f.UsesRecommendedPreset() {
		t.Error("Load() did not pick up the preset field")
	}
}
