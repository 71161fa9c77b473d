// Package config loads training settings from an optional YAML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kavorite/doc2vec/doc2vec"
	"github.com/kavorite/doc2vec/errs"
)

// unset marks a min_count nobody chose; zero is a valid choice.
const unset = -1

// Train is the on-disk training configuration. Every field may also be given
// on the command line, which takes precedence.
type Train struct {
	Model              doc2vec.Config `yaml:"model"`
	Intersect          string         `yaml:"intersect,omitempty"`
	IntersectFormat    string         `yaml:"intersect_format,omitempty"`
	Encoding           string         `yaml:"encoding,omitempty"`
	WantedExtensions   []string       `yaml:"wanted_extensions,omitempty"`
	UnwantedExtensions []string       `yaml:"unwanted_extensions,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Train {
	cfg := &Train{
		Model:           doc2vec.DefaultConfig(),
		IntersectFormat: "auto",
		Encoding:        "utf-8",
	}
	cfg.Model.MinCount = unset
	return cfg
}

// Validate reports the required model settings that were never given, then
// checks the model settings themselves.
func (t *Train) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		unset bool
	}{
		{"epochs", t.Model.Epochs == 0},
		{"window", t.Model.Window == 0},
		{"min-count", t.Model.MinCount == unset},
		{"vector-size", t.Model.VectorSize == 0},
	} {
		if f.unset {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return errs.Configf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return t.Model.Validate()
}

// Load reads path on top of the defaults, so keys missing from the file keep
// their default values.
func Load(path string) (*Train, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *Train) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
