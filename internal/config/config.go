// Package config loads cstlint's TOML configuration document and
// translates it into the rule-store overrides the core consumes, using
// github.com/BurntSushi/toml against a small concrete schema.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
)

// RuleConfig is one [rules.<name>] table entry.
type RuleConfig struct {
	Enabled *bool `toml:"enabled"`
	Severity string `toml:"severity"`
	Options map[string]any `toml:"options"`
}

// File is the parsed document root: a [rules] table keyed by rule name,
// plus a top-level preset selector.
type File struct {
	// Preset selects the base rule set before per-rule overrides apply:
	// "builtins" (default) or "recommended".
	Preset string `toml:"preset"`
	Rules map[string]RuleConfig `toml:"rules"`
}

// Load reads and parses a TOML config file at path.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return &f, nil
}

// LoadBytes parses a TOML document already read into memory, for callers
// (tests, stdin piping) that don't have a filesystem path.
func LoadBytes(data []byte) (*File, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("config: decoding document: %w", err)
	}
	return &f, nil
}

var severityNames = map[string]diagnostic.Severity{
	"error": diagnostic.Error,
	"warning": diagnostic.Warning,
	"note": diagnostic.Note,
	"help": diagnostic.Help,
	"info": diagnostic.Info,
}

// Overrides converts the file's [rules] table into the
// map[string]rulengine.Config LoadRules expects, defaulting severity to
// Warning when unspecified or unrecognized.
func (f *File) Overrides() map[string]rulengine.Config {
	out := make(map[string]rulengine.Config, len(f.Rules))
	for name, rc := range f.Rules {
		sev := diagnostic.Warning
		if s, ok := severityNames[rc.Severity]; ok {
			sev = s
		}
		enabled := true
		if rc.Enabled != nil {
			enabled = *rc.Enabled
		}
		out[name] = rulengine.Config{Enabled: enabled, Severity: sev}
	}
	return out
}

// UsesRecommendedPreset reports whether the document selected the
// "recommended" preset rather than the default "builtins" one.
func (f *File) UsesRecommendedPreset() bool {
	return f.Preset == "recommended"
}

// Exists reports whether path refers to a readable file, used by the CLI
// to silently fall back to defaults when no config file is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
