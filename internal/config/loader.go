package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvPath names the variable that points coachctl at its config file.
const EnvPath = "CONFIG_PATH"

const fileName = "config.yaml"

// Load reads the coachctl configuration. Environment variables win over the
// file and the file wins over env-default tags.
//
// The file is the first of: path (the -config flag), $CONFIG_PATH,
// ./config.yaml and <user config dir>/coachctl/config.yaml. A file named by
// path or $CONFIG_PATH must exist. When none of the implicit locations has a
// file the configuration comes from the environment alone.
func Load(path string) (*Config, error) {
	file, err := locate(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if file != "" {
		err = cleanenv.ReadConfig(file, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", describe(file), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", describe(file), err)
	}
	return &cfg, nil
}

// locate returns the config file to read, or "" for environment only.
func locate(path string) (string, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: %s: %w", path, err)
		}
		return path, nil
	}

	candidates := []string{fileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "coachctl", fileName))
	}
	for _, c := range candidates {
		_, err := os.Stat(c)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: %s: %w", c, err)
		}
	}
	return "", nil
}

func describe(file string) string {
	if file == "" {
		return "environment"
	}
	return file
}
