// Package yaml loads clinics.Config from YAML files.
package yaml

import (
	"errors"
	"os"

	"github.com/fwojciec/clinics"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no config
// path is given.
const DefaultConfigFile = "clinics.yaml"

// ConfigEnv names the environment variable holding a config file path.
const ConfigEnv = "CLINICS_CONFIG"

// LoadConfig reads a config file on top of clinics.DefaultConfig.
// Keys missing from the file keep their default values.
// Returns ENOTFOUND if the file does not exist.
func LoadConfig(path string) (*clinics.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, clinics.Errorf(clinics.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of clinics.DefaultConfig.
func ParseConfig(data []byte) (*clinics.Config, error) {
	cfg := clinics.DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, clinics.Errorf(clinics.EINVALID, "invalid config: %v", err)
	}
	return cfg, nil
}

// FindConfigFile returns the config file to load, searching in order:
// 1. the explicit path, if not empty
// 2. the path in $CLINICS_CONFIG
// 3. clinics.yaml in the working directory, if it exists
//
// Returns an empty string when no config file applies.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}
