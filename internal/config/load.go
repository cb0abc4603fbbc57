package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the defaults overlaid with values from the yaml file at path.
// An empty path, or a missing file at the default location, is not an error.
func Load(path string) (*Config, error) {
	c := defaults()

	optional := false
	if path == "" {
		path = "./config/fleetdash.yaml"
		optional = true
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}
