package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section properties",
	Long: `Compute the geometric properties of a beam cross-section.

A section is either one of the built-in profiles (rect, angle, ibeam)
or a shape expression in a JSON file. Expressions start from the unit
square centered at the origin and combine it with shift, scale, weight,
negate, sum, subtract and center nodes.

Subcommands:
  analyze  - Properties of a single section
  batch    - Properties of every section in a spreadsheet

Example JSON file structure (a 200x20 flange on a 10x180 web):
{
  "name": "T-Section",
  "shape": {
    "kind": "center",
    "shape": {
      "kind": "sum",
      "shapes": [
        {"kind": "shift", "dy": 100, "shape": {"kind": "rectangle", "width": 200, "height": 20}},
        {"kind": "rectangle", "width": 10, "height": 180}
      ]
    }
  }
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
