package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"shopscout-engine/internal/lexicon"
	"shopscout-engine/internal/rank"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Search struct {
		DefaultSites         []string `yaml:"default_sites"`
		DefaultK             int      `yaml:"default_k"`
		SourceTimeoutSeconds int      `yaml:"source_timeout_seconds"`
		HostRatePerSec       float64  `yaml:"host_rate_per_sec"`
		HostRateBurst        int      `yaml:"host_rate_burst"`
		PagesDir             string   `yaml:"pages_dir"`
	} `yaml:"search"`

	Scoring rank.Weights `yaml:"scoring"`

	Lexicons lexicon.Set `yaml:"lexicons"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
