package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load resolves the config file and reads it with ENV overrides.
//
// CONFIG_PATH wins when set and must exist. Otherwise the first existing file
// among ./feyforge.yaml, ./config.yaml and <user config dir>/feyforge/config.yaml
// is used. With none of them present, configuration comes from ENV and
// env-default tags alone.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		return LoadFile(path)
	}

	for _, path := range searchPaths() {
		_, err := os.Stat(path)
		if err == nil {
			return LoadFile(path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	return LoadFile("")
}

// LoadFile reads path (ENV only when path is empty) and validates the result.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func searchPaths() []string {
	paths := []string{"feyforge.yaml", "config.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "feyforge", "config.yaml"))
	}
	return paths
}
