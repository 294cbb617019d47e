package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsPromptWhenOmitted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolve.yaml")
	if err := os.WriteFile(path, []byte("consult_files:\n  - family.pl\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, DefaultPrompt)
	}
	if len(cfg.ConsultFiles) != 1 || cfg.ConsultFiles[0] != "family.pl" {
		t.Errorf("ConsultFiles = %v", cfg.ConsultFiles)
	}
}

func TestLoadHonorsExplicitPrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolve.yaml")
	if err := os.WriteFile(path, []byte("prompt: '>> '\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != ">> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, ">> ")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/resolve.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, DefaultPrompt)
	}
	if len(cfg.ConsultFiles) != 0 {
		t.Errorf("ConsultFiles = %v, want none", cfg.ConsultFiles)
	}
}
