// Released under an MIT license. See LICENSE.

// Package config reads starlisp's optional YAML configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// DefaultPrompt is shown when the configuration does not name a prompt.
const DefaultPrompt = ">> "

// T (config) holds the settings for a session.
type T struct {
	History string   `yaml:"history"`
	Preload []string `yaml:"preload"`
	Prompt  string   `yaml:"prompt"`
	Quiet   bool     `yaml:"quiet"`
}

type config = T

// Default returns the settings used when there is no configuration file.
func Default() *config {
	c := &config{Prompt: DefaultPrompt}

	if home, err := os.UserHomeDir(); err == nil {
		c.History = filepath.Join(home, ".starlisp_history")
	}

	return c
}

// DefaultPath returns the path of the configuration file read when none
// is named on the command line.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".starlisp.yaml")
}

// Load reads the configuration file at path over the defaults. If path is
// empty the default path is tried and it is not an error for that file to
// be missing.
func Load(path string) (*config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return c, nil
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return nil, err
	}

	err = Parse(b, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Parse decodes the YAML document b into c. Keys absent from b keep the
// value they had in c.
func Parse(b []byte, c *config) error {
	err := yaml.Unmarshal(b, c)
	if err != nil {
		return err
	}

	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}

	return nil
}
