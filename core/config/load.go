package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. A missing file is
// not an error: the embedded defaults apply. A present but invalid
// file is always an error so typos don't silently loosen the limits.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a rover.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return defaultConfig(), nil
	case err != nil:
		return nil, err
	}

	// Start from the defaults so partial files only override what
	// they mention.
	out := *defaultConfig()
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	return &out, nil
}
