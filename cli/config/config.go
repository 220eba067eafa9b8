package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host     string `yaml:"host"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"server"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
}

var GlobalConfig *Config

func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".animewalls"), nil
}

func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	GlobalConfig = &config
	return &config, nil
}

func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	GlobalConfig = config
	return nil
}

func Init() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{}
	config.Server.Host = "localhost"
	config.Server.HTTPPort = 8080
	config.Output.Format = "text"

	return Save(config)
}

func GetServerURL() (string, error) {
	cfg := GlobalConfig
	if cfg == nil {
		loaded, err := Load()
		if err != nil {
			return "", err
		}
		cfg = loaded
	}
	return fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.HTTPPort), nil
}
