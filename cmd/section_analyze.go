package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/logging"
	"github.com/alexiusacademia/gosection/internal/material"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionAnalyzeShape       shapeFlags
	sectionAnalyzeMaterial    string
	sectionAnalyzeShowTree    bool
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeExportFile  string
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute area, centroid and moment of inertia of a section",
	Long: `Compute the properties of a cross-section:
  - Area and bounding box
  - Centroid
  - Second moment of area about the axis y = 0
  - Section modulus and radius of gyration

Built-in profiles are centered at the origin, so y = 0 is also the
centroidal axis. For JSON sections y = 0 is wherever the expression
puts it; wrap the root in a "center" node to use the centroidal axis.

Examples:
  # 100x100 I-beam with 3 mm flanges and web
  gosection section analyze --shape ibeam -b 100 --height 100 --flange 3 --web 3

  # 40x40x5 angle with a drawing
  gosection section analyze --shape angle --side 40 --wall 5 --diagram

  # Section from a file, exported as an image
  gosection section analyze -f t-section.json -o t-section.png`,
	RunE: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeShape.register(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeMaterial, "material", "m", "", "Material for mass per metre (default from GOSECTION_MATERIAL)")

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowTree, "tree", false, "Print the shape expression")
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) error {
	def, err := sectionAnalyzeShape.definition()
	if err != nil {
		return err
	}

	s, err := def.Build()
	if err != nil {
		return fmt.Errorf("building section: %w", err)
	}

	props, err := section.Summarize(s)
	if err != nil {
		return fmt.Errorf("analyzing section: %w", err)
	}

	matName := sectionAnalyzeMaterial
	if matName == "" {
		matName = def.Material
	}
	if matName == "" {
		matName = cfg.Material
	}
	mat, err := material.Lookup(matName)
	if err != nil {
		return err
	}

	logging.Logger().Debug("section analyzed", "name", def.Name, "area", props.Area, "moment", props.Moment)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                 CROSS-SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if def.Name != "" {
		fmt.Printf("  Section: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Printf("  Description: %s\n", def.Description)
	}
	fmt.Printf("  Shape: %v\n", s)
	fmt.Println()

	if sectionAnalyzeShowTree {
		expr := s
		if c, ok := s.(section.Composite); ok {
			expr = c.Expression()
		}
		fmt.Println("EXPRESSION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  %v\n", expr)
		fmt.Println()
	}

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width:\t%.2f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.2f mm\n", props.Height)
	fmt.Fprintf(w, "  Bounding box:\tx %.2f … %.2f, y %.2f … %.2f mm\n", props.MinX, props.MaxX, props.MinY, props.MaxY)
	fmt.Fprintf(w, "  Area (A):\t%.2f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid:\t(%.3f, %.3f) mm\n", props.CentroidX, props.CentroidY)
	w.Flush()
	fmt.Println()

	fmt.Println("BENDING ABOUT y = 0:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.4g mm⁴\n", props.Moment)
	fmt.Fprintf(w, "  Extreme fibre (c):\t%.2f mm\n", props.C)
	fmt.Fprintf(w, "  Section modulus (S = I/c):\t%.4g mm³\n", props.SectionModulus)
	fmt.Fprintf(w, "  Radius of gyration (r):\t%.2f mm\n", props.RadiusOfGyration)
	w.Flush()
	fmt.Println()

	fmt.Println("MASS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s (%.0f kg/m³)\n", mat.Name, mat.Density)
	fmt.Fprintf(w, "  Mass per metre:\t%.3f kg/m\n", mat.LinearMass(props.Area*material.MM*material.MM))
	w.Flush()
	fmt.Println()

	if sectionAnalyzeShowDiagram || sectionAnalyzeExportFile != "" {
		data, err := diagram.NewSectionDiagramData(def.Name, s, "mm")
		if err != nil {
			return fmt.Errorf("preparing diagram: %w", err)
		}

		if sectionAnalyzeShowDiagram {
			fmt.Println(diagram.DrawASCIISection(data, 48, 20))
			fmt.Println(diagram.DrawSummaryBox(def.Name, []string{
				fmt.Sprintf("A = %.2f mm²", props.Area),
				fmt.Sprintf("I = %.4g mm⁴", props.Moment),
				fmt.Sprintf("S = %.4g mm³", props.SectionModulus),
			}))
		}

		if sectionAnalyzeExportFile != "" {
			if err := diagram.ExportSectionDiagram(data, sectionAnalyzeExportFile); err != nil {
				return fmt.Errorf("exporting diagram: %w", err)
			}
			fmt.Printf("Diagram exported to: %s\n", sectionAnalyzeExportFile)
		}
	}

	return nil
}
