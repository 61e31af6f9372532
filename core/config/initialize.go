package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir so users can
// tune the limits. It refuses to overwrite an existing file.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	dest := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, dest)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists, not overwriting", dest)
	}

	if err := afero.WriteFile(fsys, dest, defaultConfigData, 0644); err != nil {
		return err
	}
	logger.Printf("Wrote %s", dest)
	return nil
}
