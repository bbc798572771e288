package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Model != "gemini-pro" {
		t.Errorf("Default model = %q, want %q", cfg.Model, "gemini-pro")
	}
	if cfg.Base != "HEAD~1" {
		t.Errorf("Default base = %q, want %q", cfg.Base, "HEAD~1")
	}
	if cfg.Output != ".github/scripts/review-output.md" {
		t.Errorf("Default output = %q, want %q", cfg.Output, ".github/scripts/review-output.md")
	}
	if cfg.Comment {
		t.Error("Default comment should be false")
	}
	if !cfg.RedactSecrets {
		t.Error("Default redactSecrets should be true")
	}
}

func TestMergeEnv(t *testing.T) {
	orig := map[string]string{}
	envKeys := []string{"LOOKOUT_MODEL", "LOOKOUT_BASE", "LOOKOUT_OUTPUT"}
	for _, k := range envKeys {
		orig[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range orig {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	os.Setenv("LOOKOUT_MODEL", "gemini-2.5-pro")
	os.Setenv("LOOKOUT_BASE", "origin/main")
	os.Setenv("LOOKOUT_OUTPUT", "out/review.md")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gemini-2.5-pro")
	}
	if cfg.Base != "origin/main" {
		t.Errorf("Base = %q, want %q", cfg.Base, "origin/main")
	}
	if cfg.Output != "out/review.md" {
		t.Errorf("Output = %q, want %q", cfg.Output, "out/review.md")
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"model":  "gemini-2.5-pro",
		"base":   "HEAD~3",
		"output": "review.md",
	})

	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gemini-2.5-pro")
	}
	if cfg.Base != "HEAD~3" {
		t.Errorf("Base = %q, want %q", cfg.Base, "HEAD~3")
	}
	if cfg.Output != "review.md" {
		t.Errorf("Output = %q, want %q", cfg.Output, "review.md")
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, nil)
	if cfg.Model != "gemini-pro" {
		t.Error("Model changed with nil overrides")
	}
}

func TestMergeOverrides_EmptyValueIgnored(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{"model": ""})
	if cfg.Model != "gemini-pro" {
		t.Errorf("Model = %q, empty override should be ignored", cfg.Model)
	}
}

func TestConfigPrecedence(t *testing.T) {
	orig := os.Getenv("LOOKOUT_MODEL")
	defer func() {
		if orig == "" {
			os.Unsetenv("LOOKOUT_MODEL")
		} else {
			os.Setenv("LOOKOUT_MODEL", orig)
		}
	}()

	os.Setenv("LOOKOUT_MODEL", "from-env")

	cfg := Load(nil)
	if cfg.Model != "from-env" {
		t.Errorf("After env merge, Model = %q, want %q", cfg.Model, "from-env")
	}

	cfg = Load(map[string]string{"model": "from-flag"})
	if cfg.Model != "from-flag" {
		t.Errorf("After override, Model = %q, want %q", cfg.Model, "from-flag")
	}
}
