// Package config provides configuration management functionality for the
// scriptscan application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration.
type Config struct {
	// ProjectDir is the root of the game project to scan.
	ProjectDir string `yaml:"project_dir"`
	// OpenScene is the scene treated as currently open for the
	// attached-objects pass. Optional; empty disables the pass.
	OpenScene string `yaml:"open_scene,omitempty"`
	// IgnoreFile points to a gitignore-style pattern file applied while
	// walking the project tree. Optional.
	IgnoreFile string `yaml:"ignore_file,omitempty"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.ProjectDir == "" {
		return ErrProjectDirEmpty
	}
	return nil
}

// expandTildes expands ~ prefixes in all configured paths.
func (c *Config) expandTildes() error {
	for _, field := range []*string{&c.ProjectDir, &c.OpenScene, &c.IgnoreFile} {
		if *field == "" {
			continue
		}
		expanded, err := expandTilde(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}
