package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avral/scriptscan/pkg/asset"
)

var unusedOnly bool

func createScanCmd() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan [--unused-only]",
		Short: "Scan the project and print a usage report",
		Long: `Scan the project for script components and print each one with its
usage status. Scripts not contained in any prefab or scene are unused.

Examples:
  scriptscan scan
  scriptscan scan --unused-only
  scriptscan -p ~/projects/mygame scan`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			scanner, err := newScanner()
			if err != nil {
				return err
			}
			scanner.SetUnusedOnly(unusedOnly)

			if _, err := scanner.Refresh(); err != nil {
				return fmt.Errorf("failed to scan project: %w", err)
			}

			refs := scanner.References()
			if len(refs) == 0 {
				if !quiet {
					fmt.Println("No scripts found.")
				}
				return nil
			}

			displayReferences(refs)
			return nil
		},
	}

	scanCmd.Flags().BoolVar(&unusedOnly, "unused-only", false, "Only report scripts unused by any scene or prefab")

	return scanCmd
}

// displayReferences prints the report. Quiet mode prints bare paths for
// piping into other tools.
func displayReferences(refs []*asset.Reference) {
	if quiet {
		for _, ref := range refs {
			fmt.Println(ref.Script.Path)
		}
		return
	}

	unused := 0
	for _, ref := range refs {
		status := "used  "
		if ref.IsUnused() {
			status = "UNUSED"
			unused++
		}
		fmt.Printf("  [%s] %s\n", status, ref.Script.Path)
	}

	fmt.Printf("\n%d scripts, %d unused\n", len(refs), unused)
}
