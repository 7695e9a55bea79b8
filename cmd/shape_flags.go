package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosection/internal/section"
	"github.com/spf13/cobra"
)

// shapeFlags selects a section either from a JSON file or from one of the
// built-in profiles. Dimensions are in mm.
type shapeFlags struct {
	file string
	kind string

	width  float64
	height float64
	flange float64
	web    float64
	side   float64
	wall   float64
}

func (f *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to section JSON file")
	cmd.Flags().StringVarP(&f.kind, "shape", "s", "", "Built-in profile: rect, angle or ibeam")

	cmd.Flags().Float64VarP(&f.width, "width", "b", 0, "Width of rect or ibeam (mm)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Height of rect or ibeam (mm)")
	cmd.Flags().Float64Var(&f.flange, "flange", 0, "Flange thickness of ibeam (mm)")
	cmd.Flags().Float64Var(&f.web, "web", 0, "Web thickness of ibeam (mm)")
	cmd.Flags().Float64Var(&f.side, "side", 0, "Leg length of angle (mm)")
	cmd.Flags().Float64Var(&f.wall, "wall", 0, "Leg thickness of angle (mm)")

	cmd.MarkFlagsMutuallyExclusive("file", "shape")
	cmd.MarkFlagsOneRequired("file", "shape")
}

// definition returns the selected section as a definition
func (f *shapeFlags) definition() (*section.Definition, error) {
	if f.file != "" {
		return section.LoadFromFile(f.file)
	}

	node := &section.Node{}
	var name string

	switch strings.ToLower(f.kind) {
	case "rect", "rectangle":
		if f.width <= 0 || f.height <= 0 {
			return nil, fmt.Errorf("rect needs --width and --height")
		}
		node.Kind = section.KindRectangle
		node.Width, node.Height = f.width, f.height
		name = fmt.Sprintf("R %gx%g", f.width, f.height)

	case "angle", "l":
		if f.side <= 0 || f.wall <= 0 {
			return nil, fmt.Errorf("angle needs --side and --wall")
		}
		if f.wall > f.side {
			return nil, fmt.Errorf("angle wall %g is thicker than its side %g", f.wall, f.side)
		}
		node.Kind = section.KindAngle
		node.Side, node.Wall = f.side, f.wall
		name = fmt.Sprintf("L %gx%g", f.side, f.wall)

	case "ibeam", "i":
		if f.width <= 0 || f.height <= 0 || f.flange <= 0 || f.web <= 0 {
			return nil, fmt.Errorf("ibeam needs --width, --height, --flange and --web")
		}
		if 2*f.flange >= f.height {
			return nil, fmt.Errorf("ibeam flanges (2 × %g) leave no web in height %g", f.flange, f.height)
		}
		node.Kind = section.KindIBeam
		node.Width, node.Height, node.Flange, node.Web = f.width, f.height, f.flange, f.web
		name = fmt.Sprintf("I %gx%g", f.width, f.height)

	default:
		return nil, fmt.Errorf("unknown shape %q (use rect, angle or ibeam)", f.kind)
	}

	return &section.Definition{Name: name, Shape: node}, nil
}
