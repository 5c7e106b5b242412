package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrProjectDirEmpty = errors.New("project_dir cannot be empty")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("scriptscan configuration not found. Run 'scriptscan init' to initialize")
)
