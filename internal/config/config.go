// Package config loads application settings from YAML with env overrides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"todolist/internal/task"
)

type Config struct {
	DataDir    string   `yaml:"data_dir" json:"data_dir"`
	StoreFile  string   `yaml:"store_file" json:"store_file"`
	Categories []string `yaml:"categories" json:"categories"`
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.StoreFile == "" {
		c.StoreFile = "tasks.json"
	}
	if len(c.Categories) == 0 {
		c.Categories = []string{task.DefaultCategory, "Work", "Personal", "Urgent"}
	}
}

// StorePath is the resolved location of the task file.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, c.StoreFile)
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}

// FromEnv applies environment overrides on top of cfg.
func FromEnv(cfg *Config) *Config {
	if v := os.Getenv("TODOLIST_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TODOLIST_STORE_FILE"); v != "" {
		cfg.StoreFile = v
	}
	return cfg
}
