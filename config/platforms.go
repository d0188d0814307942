package config

import (
	"fmt"
	"maps"
	"os"

	"govex/enums"
	"govex/models"

	"gopkg.in/yaml.v3"
)

const configPath = "config.yaml"

var platformConfigs map[string]*models.PlatformConfig

// LoadPlatformConfigs reads optional per-platform overrides from
// config.yaml. A missing file is not an error.
func LoadPlatformConfigs() error {
	platformConfigs = make(map[string]*models.PlatformConfig)

	_, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed reading config file: %w", err)
	}

	var rawConfig map[string]*models.PlatformConfig

	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed parsing config file: %w", err)
	}
	maps.Copy(platformConfigs, rawConfig)

	return nil
}

func GetPlatformConfig(platform enums.Platform) *models.PlatformConfig {
	if config, exists := platformConfigs[string(platform)]; exists {
		return config
	}
	return nil
}
