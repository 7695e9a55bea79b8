package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/logging"
	"github.com/alexiusacademia/gosection/internal/report"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionBatchFile   string
	sectionBatchOutput string
)

var sectionBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every section listed in a spreadsheet",
	Long: `Read sections from the first sheet of an .xlsx workbook and print
their properties. Optionally write the results to a new workbook.

The first row is a header. Each following row holds:
  name | kind | p1 | p2 | p3 | p4

  rect   width, height
  angle  side, wall
  ibeam  width, height, flange, web

All dimensions in mm. Rows that cannot be read are reported and skipped.

Examples:
  gosection section batch --file sections.xlsx
  gosection section batch -f sections.xlsx -o results.xlsx`,
	RunE: runSectionBatch,
}

func init() {
	sectionCmd.AddCommand(sectionBatchCmd)

	sectionBatchCmd.Flags().StringVarP(&sectionBatchFile, "file", "f", "", "Input workbook (.xlsx) [required]")
	sectionBatchCmd.Flags().StringVarP(&sectionBatchOutput, "output", "o", "", "Write results to this workbook (.xlsx)")
	sectionBatchCmd.MarkFlagRequired("file")
}

func runSectionBatch(cmd *cobra.Command, args []string) error {
	defs, rowErrs, err := report.ReadSectionsXLSX(sectionBatchFile)
	if err != nil {
		return err
	}
	for _, rowErr := range rowErrs {
		logging.Logger().Warn("skipped row", "file", sectionBatchFile, "err", rowErr)
	}

	rows := make([]report.PropertiesRow, 0, len(defs))
	for _, def := range defs {
		row := report.PropertiesRow{Name: def.Name}

		s, err := def.Build()
		if err == nil {
			row.Properties, err = section.Summarize(s)
		}
		if err != nil {
			row.Error = err.Error()
			logging.Logger().Warn("section failed", "name", def.Name, "err", err)
		}
		rows = append(rows, row)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                 BATCH SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tA (mm²)\tI (mm⁴)\tS (mm³)\tr (mm)\n")
	fmt.Fprintf(w, "  ────\t───────\t───────\t───────\t──────\n")
	for _, row := range rows {
		if row.Properties == nil {
			fmt.Fprintf(w, "  %s\t%s\t\t\t\n", row.Name, row.Error)
			continue
		}
		p := row.Properties
		fmt.Fprintf(w, "  %s\t%.2f\t%.4g\t%.4g\t%.2f\n", row.Name, p.Area, p.Moment, p.SectionModulus, p.RadiusOfGyration)
	}
	w.Flush()
	fmt.Println()

	if len(rowErrs) > 0 {
		fmt.Printf("  %d row(s) skipped:\n", len(rowErrs))
		for _, rowErr := range rowErrs {
			fmt.Printf("    %v\n", rowErr)
		}
		fmt.Println()
	}

	if sectionBatchOutput != "" {
		if err := report.WriteXLSX(sectionBatchOutput, rows); err != nil {
			return err
		}
		fmt.Printf("Results written to: %s\n", sectionBatchOutput)
	}

	return nil
}
