package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/loads"
	"github.com/spf13/cobra"
)

var (
	// Unfactored midspan loads (kN)
	loadDead       float64
	loadLive       float64
	loadRoof       float64
	loadWind       float64
	loadEarthquake float64
	loadRain       float64

	// Options
	showAll       bool
	useSimplified bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate the factored point load from load combinations",
	Long: `Calculate the factored midspan point load (Pu) from strength-design
load combinations.

Provide unfactored loads by type and this command computes the factored
load for every combination. The governing value can be passed straight
to 'gosection beam check --load'.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gosection load --dead 5 --live 3

  # With wind load
  gosection load --dead 5 --live 3 --wind 2

  # Show all combinations
  gosection load --dead 5 --live 3 --all`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Dead load (kN)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Live load (kN)")
	loadCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Roof live load (kN)")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind load (kN)")
	loadCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Earthquake load (kN)")
	loadCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Rain load (kN)")

	// Options
	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	p := loads.PointLoads{
		Dead:       loadDead,
		Live:       loadLive,
		Roof:       loadRoof,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
		Rain:       loadRain,
	}

	if p.IsZero() {
		return fmt.Errorf("provide at least one unfactored load (see 'gosection load --help')")
	}

	combinations := loads.LoadCombinations
	if useSimplified {
		combinations = loads.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("              FACTORED POINT LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOADS (kN):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	inputs := []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", p.Dead},
		{"Live Load (L)", p.Live},
		{"Roof Live Load (Lr)", p.Roof},
		{"Wind Load (W)", p.Wind},
		{"Earthquake Load (E)", p.Earthquake},
		{"Rain Load (R)", p.Rain},
	}
	for _, in := range inputs {
		if in.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", in.label, in.value)
		}
	}
	w.Flush()
	fmt.Println()

	pu, governing := loads.Governing(p, combinations)

	if showAll {
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tPu (kN)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(p), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if governing.ID == "" {
		fmt.Println("  No combination produces a positive load.")
		fmt.Println()
		return nil
	}
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED LOAD (Pu) = %-10s  ║\n", fmt.Sprintf("%.2f kN", pu))
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()

	return nil
}
