package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the passes and the server need. Values come from
// an optional YAML file, overridden by environment variables (a .env file is
// loaded first if present).
type Config struct {
	DatabasePath  string `yaml:"database_path"`
	ListenAddr    string `yaml:"listen_addr"`
	AdminSecret   string `yaml:"admin_secret"`
	SourceDir     string `yaml:"source_dir"`
	NormalizedDir string `yaml:"normalized_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath:  "vocab.db",
		ListenAddr:    ":8080",
		SourceDir:     "data/source",
		NormalizedDir: "data/normalized",
	}
}

// LoadConfig builds the effective configuration. path may be empty, in which
// case only defaults and environment apply; a named file that does not exist
// is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// Best effort; a missing .env is fine
	_ = godotenv.Load()

	applyEnv(&cfg.DatabasePath, "VOCAB_DB_PATH")
	applyEnv(&cfg.ListenAddr, "VOCAB_LISTEN_ADDR")
	applyEnv(&cfg.AdminSecret, "VOCAB_ADMIN_SECRET")
	applyEnv(&cfg.SourceDir, "VOCAB_SOURCE_DIR")
	applyEnv(&cfg.NormalizedDir, "VOCAB_NORMALIZED_DIR")

	return cfg, nil
}

func applyEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// SourcePath returns the source spreadsheet CSV for a word type.
func (c *Config) SourcePath(wordType string) string {
	return filepath.Join(c.SourceDir, wordType+"s.csv")
}

// NormalizedPath returns the normalized CSV for a word type.
func (c *Config) NormalizedPath(wordType string) string {
	return filepath.Join(c.NormalizedDir, wordType+"s.csv")
}
