package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosection/internal/section"
)

// SectionDiagramData holds data for drawing a cross-section diagram
type SectionDiagramData struct {
	Title string

	// Decomposed section
	Patches []section.Patch

	// Properties (drawing units)
	Centroid section.Point
	Bounds   section.Box
	Area     float64
	Moment   float64

	// Unit label used in annotations, e.g. "mm"
	Unit string
}

// NewSectionDiagramData decomposes s and collects what the diagrams need
func NewSectionDiagramData(title string, s section.Shape, unit string) (SectionDiagramData, error) {
	patches, err := section.Patches(s)
	if err != nil {
		return SectionDiagramData{}, err
	}
	centroid, err := s.Centroid()
	if err != nil {
		return SectionDiagramData{}, err
	}
	return SectionDiagramData{
		Title:    title,
		Patches:  patches,
		Centroid: centroid,
		Bounds:   s.BoundingBox(),
		Area:     s.Area(),
		Moment:   s.Moment(),
		Unit:     unit,
	}, nil
}

// DrawASCIISection rasterizes the section onto a character grid.
// Each cell is sampled at its center; cells with positive net weight are
// material. The row containing y = 0 is marked as the reference axis.
func DrawASCIISection(data SectionDiagramData, widthChars, heightChars int) string {
	var sb strings.Builder

	if len(data.Patches) == 0 || widthChars <= 0 || heightChars <= 0 {
		return ""
	}

	bounds := section.PatchesBounds(data.Patches)
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return ""
	}

	dx := bounds.Width() / float64(widthChars)
	dy := bounds.Height() / float64(heightChars)

	// Row index of the reference axis, -1 when outside the section
	axisRow := -1
	if bounds.Min.Y <= 0 && bounds.Max.Y >= 0 {
		axisRow = int(bounds.Max.Y / dy)
		if axisRow >= heightChars {
			axisRow = heightChars - 1
		}
	}

	centroidRow := int((bounds.Max.Y - data.Centroid.Y) / dy)
	centroidCol := int((data.Centroid.X - bounds.Min.X) / dx)

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(data.Title)))))
	}
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))

	for row := 0; row < heightChars; row++ {
		y := bounds.Max.Y - (float64(row)+0.5)*dy

		var line strings.Builder
		for col := 0; col < widthChars; col++ {
			x := bounds.Min.X + (float64(col)+0.5)*dx

			switch {
			case row == centroidRow && col == centroidCol:
				line.WriteString("+")
			case section.NetWeightAt(data.Patches, section.Point{X: x, Y: y}) > 0:
				line.WriteString("█")
			case row == axisRow:
				line.WriteString("─")
			default:
				line.WriteString(" ")
			}
		}

		sb.WriteString(fmt.Sprintf("  │%s│", line.String()))
		if row == axisRow {
			sb.WriteString(" ◄─ y = 0")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Material\n")
	sb.WriteString("   +  = Centroid\n")
	sb.WriteString(fmt.Sprintf("  Extent %.4g × %.4g %s\n", bounds.Width(), bounds.Height(), data.Unit))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
