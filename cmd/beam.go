package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Simply supported beam checks",
	Long: `Check a simply supported beam with a midspan point load against
its material yield strength and a span/deflection limit.

Subcommands:
  check   - Stress and deflection check for a given section and load
  design  - Smallest uniform scale of a profile that passes both checks

The section is chosen the same way as for 'gosection section analyze'.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
