package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avral/scriptscan/pkg/config"
)

var initProjectDir string

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--project-dir <path>]",
		Short: "Initialize scriptscan configuration",
		Long: `Write a configuration file with the project directory to scan.

Flags:
  --project-dir   Set the project directory (defaults to the current directory)`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager := config.NewManager(resolveConfigPath())

			cfg := manager.DefaultConfig()
			if initProjectDir != "" {
				cfg.ProjectDir = initProjectDir
			}

			if err := manager.ValidateProjectDir(cfg.ProjectDir); err != nil {
				return fmt.Errorf("invalid project directory: %w", err)
			}

			if err := manager.SaveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			if !quiet {
				fmt.Printf("Configuration written to %s\n", manager.GetConfigPath())
			}
			return nil
		},
	}

	initCmd.Flags().StringVar(&initProjectDir, "project-dir", "",
		"Set the project directory (defaults to the current directory)")

	return initCmd
}
