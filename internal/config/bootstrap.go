package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shopscout-engine/internal/lexicon"
)

// EnsureUserConfig copies the shipped default config into the data dir the
// first time the engine runs, and returns the user config path.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}

// OverlayLexicons merges a standalone lexicons file over the config's
// vocabulary set. A missing file is not an error; users only create it
// when they want custom vocab without touching the main config.
func OverlayLexicons(cfg *Config, lexiconsPath string) error {
	b, err := os.ReadFile(lexiconsPath)
	if err != nil {
		return nil
	}
	var override struct {
		Lexicons lexicon.Set `yaml:"lexicons"`
	}
	if err := yaml.Unmarshal(b, &override); err != nil {
		return err
	}
	cfg.Lexicons = lexicon.Merge(cfg.Lexicons, override.Lexicons)
	return nil
}
