package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/mxcd/gtlb-api/internal/models"
)

// ConfigServiceInterface defines the interface for config storage
type ConfigServiceInterface interface {
	Load() (*models.ConfigFile, error)
	Save(configFile *models.ConfigFile) error
	GetConfigPath() string
	AddConfig(config models.Config) error
	DeleteConfig(name string) error
	FindConfig(name string) (*models.Config, error)
	GetConfigs() []models.Config
}

// ConfigService handles configuration file operations
type ConfigService struct {
	configPath string
	configFile *models.ConfigFile
}

// NewConfigService creates a new ConfigService storing its file in the XDG
// config directory.
func NewConfigService() ConfigServiceInterface {
	return &ConfigService{
		configPath: filepath.Join(xdg.ConfigHome, "gtlb-api", "config.json"),
		configFile: &models.ConfigFile{
			Configs: []models.Config{},
		},
	}
}

// GetConfigPath returns the config file path
func (c *ConfigService) GetConfigPath() string {
	return c.configPath
}

// Load loads the configuration file
func (c *ConfigService) Load() (*models.ConfigFile, error) {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			c.configFile = &models.ConfigFile{
				Configs: []models.Config{},
			}
			return c.configFile, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, c.configFile); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return c.configFile, nil
}

// Save saves the configuration file
func (c *ConfigService) Save(configFile *models.ConfigFile) error {
	c.configFile = configFile

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(configFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddConfig adds a new host configuration, replacing any entry with the
// same name
func (c *ConfigService) AddConfig(config models.Config) error {
	for i, existing := range c.configFile.Configs {
		if existing.Name == config.Name {
			c.configFile.Configs[i] = config
			return c.Save(c.configFile)
		}
	}

	c.configFile.Configs = append(c.configFile.Configs, config)
	return c.Save(c.configFile)
}

// DeleteConfig deletes a host configuration by name
func (c *ConfigService) DeleteConfig(name string) error {
	for i, existing := range c.configFile.Configs {
		if existing.Name == name {
			c.configFile.Configs = append(c.configFile.Configs[:i], c.configFile.Configs[i+1:]...)
			return c.Save(c.configFile)
		}
	}

	return fmt.Errorf("no config named %q", name)
}

// FindConfig returns the host configuration with the given name
func (c *ConfigService) FindConfig(name string) (*models.Config, error) {
	for _, existing := range c.configFile.Configs {
		if existing.Name == name {
			return &existing, nil
		}
	}

	return nil, fmt.Errorf("no config named %q", name)
}

// GetConfigs returns all host configurations
func (c *ConfigService) GetConfigs() []models.Config {
	return c.configFile.Configs
}
