package main

import (
	"github.com/spf13/cobra"

	"github.com/avral/scriptscan/pkg/view"
)

func createUICmd() *cobra.Command {
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse scan results interactively",
		Long: `Open an interactive terminal browser over the scan results.

Examples:
  scriptscan ui
  scriptscan -p ~/projects/mygame ui`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			scanner, err := newScanner()
			if err != nil {
				return err
			}

			return view.Run(scanner)
		},
	}

	return uiCmd
}
