// Package main provides the command-line interface for the scriptscan
// application.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avral/scriptscan/pkg/config"
	"github.com/avral/scriptscan/pkg/dependencies"
	"github.com/avral/scriptscan/pkg/logger"
	"github.com/avral/scriptscan/pkg/scriptscan"
)

var (
	quiet      bool
	verbose    bool
	configPath string
	projectDir string
)

// resolveConfigPath returns the config path from the flag, or the default
// under the user's home directory.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".scriptscan", "config.yaml")
}

// projectDirOverride substitutes the project directory from the -p flag
// for whatever the config file says.
type projectDirOverride struct {
	config.Manager
	projectDir string
}

func (o projectDirOverride) GetConfigWithFallback() (config.Config, error) {
	cfg, err := o.Manager.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}
	cfg.ProjectDir = o.projectDir
	return cfg, nil
}

// newScanner creates a scanner wired from the global flags.
func newScanner() (scriptscan.ScriptScanner, error) {
	var manager config.Manager = config.NewManager(resolveConfigPath())
	if projectDir != "" {
		manager = projectDirOverride{Manager: manager, projectDir: projectDir}
	}

	deps := dependencies.New().WithConfig(manager)
	if verbose && !quiet {
		deps = deps.WithLogger(logger.NewDefaultLogger())
	}

	return scriptscan.NewScriptScanner(scriptscan.NewScriptScannerParams{
		Dependencies: deps,
	})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "scriptscan",
		Short: "ScriptScan - Unused Script Detector",
		Long: `A CLI tool for scanning game projects to find script components ` +
			`that are not used by any scene or prefab.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except results")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", "", "Project directory to scan (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(createScanCmd(), createUICmd(), createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
