package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory. It
// refuses to clobber an existing configuration.
func Initialize(fs afero.Fs, path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)

	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s already exists, not overwriting", configPath)
	}

	if err := afero.WriteFile(fs, configPath, defaultConfigData, 0644); err != nil {
		return nil, err
	}
	logger.Printf("wrote %s", configPath)

	return Default(), nil
}
