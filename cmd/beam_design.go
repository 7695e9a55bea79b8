package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosection/internal/beam"
	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/material"
	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

var (
	designShape shapeFlags

	designSpan            float64
	designLoad            float64
	designMaterial        string
	designDeflectionLimit float64

	// Diagram options
	designShowDiagram bool
	designExportFile  string
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Size a profile for a simply supported beam",
	Long: `Find the smallest uniform scale of a profile that passes both the
stress and the deflection check under a midspan point load.

Every dimension of the given section is multiplied by the same factor k.
The extreme fibre grows with k and the moment of inertia with k⁴, so the
stress falls with k³ and the deflection with k⁴. A factor below 1 means
the profile is larger than it needs to be.

Examples:
  # How large must a 100x100x3x3 I-beam be to carry 10 kN over 4 m?
  gosection beam design --shape ibeam -b 100 --height 100 --flange 3 --web 3 --span 4 --load 10

  # Size a T-section from a file for L/360
  gosection beam design -f t-section.json --span 6 --load 25 --deflection-limit 360`,
	RunE: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	designShape.register(beamDesignCmd)

	beamDesignCmd.Flags().Float64VarP(&designSpan, "span", "L", 0, "Span between supports (m) [required]")
	beamDesignCmd.Flags().Float64VarP(&designLoad, "load", "P", 0, "Factored midspan point load (kN) [required]")
	beamDesignCmd.MarkFlagRequired("span")
	beamDesignCmd.MarkFlagRequired("load")

	beamDesignCmd.Flags().StringVarP(&designMaterial, "material", "m", "", "Material name (default from GOSECTION_MATERIAL)")
	beamDesignCmd.Flags().Float64Var(&designDeflectionLimit, "deflection-limit", 0, "Allowed span/deflection ratio (default from GOSECTION_DEFLECTION_LIMIT)")

	// Diagram options
	beamDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII diagram of the sized section")
	beamDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runBeamDesign(cmd *cobra.Command, args []string) error {
	def, err := designShape.definition()
	if err != nil {
		return err
	}

	shape, err := def.Build()
	if err != nil {
		return fmt.Errorf("building section: %w", err)
	}

	matName := designMaterial
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

	limit := designDeflectionLimit
	if limit <= 0 {
		limit = cfg.DeflectionLimit
	}

	result, err := beam.Design(beam.CheckInput{
		Section:         section.Scale(shape, material.MM),
		Material:        mat,
		Span:            designSpan,
		Load:            designLoad * material.KN,
		DeflectionLimit: limit,
	})
	if err != nil {
		return err
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("            PROFILE SIZING - MIDSPAN POINT LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile:\t%v\n", shape)
	fmt.Fprintf(w, "  Material:\t%s (fy = %.0f MPa, E = %.0f GPa)\n", mat.Name, mat.Yield/material.MPa, mat.E/material.GPa)
	fmt.Fprintf(w, "  Span (L):\t%.3f m\n", designSpan)
	fmt.Fprintf(w, "  Point load (P):\t%.3f kN\n", designLoad)
	fmt.Fprintf(w, "  Deflection limit:\tL/%.0f\n", limit)
	w.Flush()
	fmt.Println()

	fmt.Println("REQUIRED SCALE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  For stress (k³ ≥ σ/fy):\t%.4f\n", result.StrengthScale)
	fmt.Fprintf(w, "  For deflection (k⁴ ≥ δ/δallow):\t%.4f\n", result.DeflectionScale)
	fmt.Fprintf(w, "  Governing:\t%s\n", result.Governs)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  SCALE FACTOR k = %-28s  ║\n", fmt.Sprintf("%.4f", result.Scale))
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Println("SIZED SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	sized := section.Scale(shape, result.Scale)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	bb := sized.BoundingBox()
	fmt.Fprintf(w, "  Overall size:\t%.1f × %.1f mm\n", bb.Width(), bb.Height())
	fmt.Fprintf(w, "  Area (A):\t%.2f mm²\n", sized.Area())
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.4g mm⁴\n", sized.Moment())
	fmt.Fprintf(w, "  Utilization:\t%.1f %%\n", result.Check.Utilization*100)
	fmt.Fprintf(w, "  Deflection:\t%.3f mm (L/%.0f)\n", result.Check.MaxDeflection/material.MM, result.Check.DeflectionRatio)
	fmt.Fprintf(w, "  Mass:\t%.2f kg\n", result.Check.Mass)
	w.Flush()
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", result.Check.Message)
	fmt.Println()

	if designShowDiagram || designExportFile != "" {
		title := fmt.Sprintf("%s × %.3f", def.Name, result.Scale)
		data, err := diagram.NewSectionDiagramData(title, sized, "mm")
		if err != nil {
			return fmt.Errorf("preparing diagram: %w", err)
		}
		if designShowDiagram {
			fmt.Println(diagram.DrawASCIISection(data, 48, 20))
		}
		if designExportFile != "" {
			if err := diagram.ExportSectionDiagram(data, designExportFile); err != nil {
				return fmt.Errorf("exporting diagram: %w", err)
			}
			fmt.Printf("Diagram exported to: %s\n", designExportFile)
		}
	}

	return nil
}
