package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gosection/internal/config"
	"github.com/alexiusacademia/gosection/internal/logging"
	"github.com/alexiusacademia/gosection/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	envFile string

	// cfg is filled in before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gosection",
	Short: "Composable beam cross-section calculator",
	Long: `gosection - Go Beam Cross-Section Calculator

A CLI tool for building beam cross-sections from a unit square and a few
combinators (shift, scale, weight, sum) and computing their properties.

This tool helps structural engineers:
  - Compute area, centroid, bounding box and second moment of area
  - Analyze rectangles, equal-leg angles, I-beams or any JSON-defined section
  - Check simply supported steel beams for stress and deflection
  - Compute factored loads from strength-design load combinations
  - Export section drawings, spreadsheets and PDF reports

Dimensions are entered in millimetres unless a command says otherwise.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logging.SetLogger(logging.NewTextLogger(os.Stderr, level))
		logging.Logger().Debug("configuration loaded",
			"env_file", envFile, "material", cfg.Material, "deflection_limit", cfg.DeflectionLimit)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosection v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Beam Cross-Section Calculator                        ║")
		fmt.Printf("  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for composing beam cross-sections and")
		fmt.Println("  computing their geometric properties.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Rectangle, angle and I-beam sections")
		fmt.Println("    • Arbitrary sections from JSON shape expressions")
		fmt.Println("    • Batch analysis of spreadsheets")
		fmt.Println("    • Simply supported beam stress and deflection check")
		fmt.Println("    • Factored loads from load combinations")
		fmt.Println()
		fmt.Println("  Use 'gosection --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file with GOSECTION_* defaults")
}
