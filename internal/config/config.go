package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSource    = "https://arpanmondal.github.io/sense-bengaluru/data.json"
	DefaultDataDir   = ".citysense"
	DefaultFrameRate = 30
	DefaultTheme     = "cyberpunk"
)

type Config struct {
	// Source is the snapshot location: an HTTP(S) URL or a local file path.
	Source    string `yaml:"source"`
	DataDir   string `yaml:"data_dir"`
	FrameRate int    `yaml:"frame_rate"`
	Theme     string `yaml:"theme"`
	Sound     bool   `yaml:"sound"`
	Debug     bool   `yaml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Source:    DefaultSource,
		DataDir:   DefaultDataDir,
		FrameRate: DefaultFrameRate,
		Theme:     DefaultTheme,
		Sound:     true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
