// Package storage persists plot configurations: YAML files for sharing a
// house style through version control, and BuntDB or SQL stores for named
// presets.
package storage

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plotkit/plotkit/core"
)

// SaveYAML writes the configuration to path as YAML.
func SaveYAML(path string, cfg *core.PlotConfig) error {
	out, err := marshalYAML(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadYAML reads a configuration from path. Fields missing from the file
// keep their defaults; unknown fields are rejected so typos fail loudly
// instead of being silently ignored.
func LoadYAML(path string) (*core.PlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := decodeStrict(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func marshalYAML(cfg *core.PlotConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}

func decodeStrict(raw []byte) (*core.PlotConfig, error) {
	cfg := core.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
