// Package config reads and writes the ledgerlens.yaml pattern
// configuration. Pattern sets are configuration, not hardcoded literals:
// callers extend them per locale without touching the engine.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ledgerlens-dev/ledgerlens/internal/classify"
	"github.com/ledgerlens-dev/ledgerlens/internal/engine"
	"github.com/ledgerlens-dev/ledgerlens/internal/extract"
)

// Config represents the top-level ledgerlens.yaml configuration.
type Config struct {
	NotePatterns     []string `yaml:"note_patterns,omitempty"`
	RatioPatterns    []string `yaml:"ratio_patterns,omitempty"`
	SubtotalPatterns []string `yaml:"subtotal_patterns,omitempty"`
	PeriodPatterns   []string `yaml:"period_patterns,omitempty"`

	// SubtotalTolerancePct is the relative tolerance for subtotal
	// validation; 0.01 means 1%.
	SubtotalTolerancePct float64 `yaml:"subtotal_tolerance_pct"`

	// SubtotalPolicy picks the winner when subtotal columns conflict:
	// "first", "largest", or "average".
	SubtotalPolicy string `yaml:"subtotal_policy,omitempty"`
}

// Load reads a ledgerlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config spelling out the built-in bilingual pattern sets,
// so a generated file documents what it overrides.
func Default() *Config {
	p := classify.DefaultPatterns()
	return &Config{
		NotePatterns:         p.Note,
		RatioPatterns:        p.Ratio,
		SubtotalPatterns:     p.Subtotal,
		PeriodPatterns:       p.Period,
		SubtotalTolerancePct: 0.01,
		SubtotalPolicy:       string(extract.PolicyFirst),
	}
}

// Engine converts the file form into an engine.Config. Empty pattern sets
// fall back to the defaults inside the classifier; a zero tolerance falls
// back to 1%.
func (c *Config) Engine() engine.Config {
	ec := engine.DefaultConfig()
	ec.Patterns = classify.Patterns{
		Note:     c.NotePatterns,
		Ratio:    c.RatioPatterns,
		Subtotal: c.SubtotalPatterns,
		Period:   c.PeriodPatterns,
	}
	if c.SubtotalTolerancePct > 0 {
		ec.SubtotalTolerance = decimal.NewFromFloat(c.SubtotalTolerancePct)
	}
	if c.SubtotalPolicy != "" {
		ec.SubtotalPolicy = extract.Policy(c.SubtotalPolicy)
	}
	return ec
}
