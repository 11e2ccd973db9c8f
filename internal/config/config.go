package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ghostpen/ghostpen/internal/provider"
)

// Config holds everything the service needs. Precedence: defaults, then the
// YAML file, then GHOSTPEN_* environment variables.
type Config struct {
	Port    int    `yaml:"port"`
	APIKey  string `yaml:"api_key"`
	DataDir string `yaml:"data_dir"`

	LMStudioURL   string `yaml:"lmstudio_url"`
	LMStudioModel string `yaml:"lmstudio_model"`
	OllamaURL     string `yaml:"ollama_url"`
	OllamaModel   string `yaml:"ollama_model"`

	LintCmd string `yaml:"lint_cmd"`
}

// Load reads the config. An empty path means defaults plus environment; a
// named file that is missing or malformed is an error.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:    8090,
		DataDir: defaultDataDir(),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Candidates builds the probe order with any configured overrides applied.
// Priority itself is fixed: LM Studio, then Ollama.
func (c Config) Candidates() []provider.Descriptor {
	candidates := provider.DefaultCandidates()
	for i, cand := range candidates {
		switch cand.Name {
		case "LM Studio":
			if c.LMStudioURL != "" {
				candidates[i].BaseURL = c.LMStudioURL
			}
			if c.LMStudioModel != "" {
				candidates[i].DefaultModel = c.LMStudioModel
			}
		case "Ollama":
			if c.OllamaURL != "" {
				candidates[i].BaseURL = c.OllamaURL
			}
			if c.OllamaModel != "" {
				candidates[i].DefaultModel = c.OllamaModel
			}
		}
	}
	return candidates
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GHOSTPEN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("GHOSTPEN_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GHOSTPEN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GHOSTPEN_LMSTUDIO_URL"); v != "" {
		cfg.LMStudioURL = v
	}
	if v := os.Getenv("GHOSTPEN_LMSTUDIO_MODEL"); v != "" {
		cfg.LMStudioModel = v
	}
	if v := os.Getenv("GHOSTPEN_OLLAMA_URL"); v != "" {
		cfg.OllamaURL = v
	}
	if v := os.Getenv("GHOSTPEN_OLLAMA_MODEL"); v != "" {
		cfg.OllamaModel = v
	}
	if v := os.Getenv("GHOSTPEN_LINT_CMD"); v != "" {
		cfg.LintCmd = v
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ghostpen"
	}
	return filepath.Join(home, ".ghostpen")
}
