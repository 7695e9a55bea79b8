package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosection/internal/logging"
	"github.com/alexiusacademia/gosection/internal/section"
)

var (
	materialFill   = color.RGBA{R: 100, G: 149, B: 237, A: 200}
	materialStroke = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	axisColor      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	centroidColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportSectionDiagram exports a cross-section diagram to an image file.
// The format follows the extension (.png, .svg, .pdf); anything else gets
// ".png" appended.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	if len(data.Patches) == 0 {
		return fmt.Errorf("nothing to draw")
	}

	p := plot.New()
	p.Title.Text = "Cross-Section"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	p.X.Label.Text = axisLabel("x", data.Unit)
	p.Y.Label.Text = axisLabel("y", data.Unit)

	// Material first, holes on top in the background color
	for _, holes := range []bool{false, true} {
		for _, patch := range data.Patches {
			if patch.Weight == 0 || (patch.Weight < 0) != holes {
				continue
			}
			poly, err := plotter.NewPolygon(boxOutline(patch.Box))
			if err != nil {
				return err
			}
			if patch.Weight > 0 {
				poly.Color = materialFill
				poly.LineStyle.Color = materialStroke
			} else {
				poly.Color = color.White
				poly.LineStyle.Color = materialStroke
				poly.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
			}
			p.Add(poly)
		}
	}

	bounds := section.PatchesBounds(data.Patches)
	margin := 0.1 * max(bounds.Width(), bounds.Height())

	// Reference axis y = 0
	axis, err := plotter.NewLine(plotter.XYs{
		{X: bounds.Min.X - margin, Y: 0},
		{X: bounds.Max.X + margin, Y: 0},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1.5)
	axis.LineStyle.Color = axisColor
	axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axis)

	// Centroid marker
	centroid, err := plotter.NewScatter(plotter.XYs{{X: data.Centroid.X, Y: data.Centroid.Y}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = centroidColor
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	// Add annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{bounds.Max.X + margin, 0, "y = 0"},
		{data.Centroid.X + margin/4, data.Centroid.Y + margin/4, fmt.Sprintf("C (%.3g, %.3g)", data.Centroid.X, data.Centroid.Y)},
		{bounds.Min.X, bounds.Min.Y - margin/2, fmt.Sprintf("A=%.4g I=%.4g", data.Area, data.Moment)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Keep the aspect ratio honest
	span := max(bounds.Width(), bounds.Height())/2 + margin
	cx, cy := (bounds.Min.X+bounds.Max.X)/2, (bounds.Min.Y+bounds.Max.Y)/2
	p.X.Min, p.X.Max = cx-span, cx+span
	p.Y.Min, p.Y.Max = cy-span, cy+span

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	size := 6 * vg.Inch
	if err := p.Save(size, size, filename); err != nil {
		return err
	}

	logging.Logger().Debug("section diagram exported", "file", filename, "patches", len(data.Patches))
	return nil
}

// boxOutline returns the four corners of b counter-clockwise
func boxOutline(b section.Box) plotter.XYs {
	return plotter.XYs{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
}

func axisLabel(axis, unit string) string {
	if unit == "" {
		return axis
	}
	return fmt.Sprintf("%s (%s)", axis, unit)
}
