package config

import "os"

// Config represents the lookout configuration.
type Config struct {
	Model         string
	Base          string
	Output        string
	Comment       bool
	RedactSecrets bool
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Model:         "gemini-pro",
		Base:          "HEAD~1",
		Output:        ".github/scripts/review-output.md",
		Comment:       false,
		RedactSecrets: true,
	}
}

// Load builds the effective config by merging: defaults <- env <- overrides.
// The overrides map comes from CLI flags (only non-empty values should be set).
func Load(overrides map[string]string) Config {
	cfg := Default()
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)
	return cfg
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("LOOKOUT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LOOKOUT_BASE"); v != "" {
		cfg.Base = v
	}
	if v := os.Getenv("LOOKOUT_OUTPUT"); v != "" {
		cfg.Output = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["base"]; ok && v != "" {
		cfg.Base = v
	}
	if v, ok := overrides["output"]; ok && v != "" {
		cfg.Output = v
	}
}
