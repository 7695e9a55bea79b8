// Package section implements composable beam cross-sections.
//
// A cross-section is an immutable expression tree. Leaves are unit squares;
// inner nodes are combinators (shift, scale, weight, sum) whose laws derive
// the node's area, bounding box, second moment of area and centroid from its
// children. Named shapes such as Rectangle or IBeam are nothing more than
// such an expression built once at construction.
//
// Coordinate system:
//   - X-axis points to the right
//   - Y-axis points upward
//   - The second moment of area is always taken about the fixed axis y = 0
package section

import (
	"errors"
	"fmt"
)

// ErrZeroArea is returned when a centroid is requested for a sum whose
// children's areas cancel exactly.
var ErrZeroArea = errors.New("centroid undefined for zero net area")

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box is an axis-aligned bounding box ((xmin, ymin), (xmax, ymax))
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Width returns the horizontal extent of the box
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Translate moves both corners by (dx, dy)
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		Min: Point{X: b.Min.X + dx, Y: b.Min.Y + dy},
		Max: Point{X: b.Max.X + dx, Y: b.Max.Y + dy},
	}
}

// Scale multiplies each corner coordinate by its axis factor.
// Negative factors are applied as-is, so Min may end up above Max.
func (b Box) Scale(fx, fy float64) Box {
	return Box{
		Min: Point{X: b.Min.X * fx, Y: b.Min.Y * fy},
		Max: Point{X: b.Max.X * fx, Y: b.Max.Y * fy},
	}
}

// Union returns the componentwise min of mins and max of maxes
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y)},
		Max: Point{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p lies inside the box, edges included
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Box) String() string {
	return fmt.Sprintf("((%g, %g), (%g, %g))", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// Shape is the capability contract shared by the unit square, every
// combinator node and every named section.
type Shape interface {
	// Area is the signed area; subtracted regions contribute negatively.
	Area() float64

	// BoundingBox is the extent propagated through the combinators.
	// Subtracted regions do not shrink it.
	BoundingBox() Box

	// Moment is the second moment of area about the fixed axis y = 0.
	Moment() float64

	// Centroid is the center of mass in the current frame. It fails with
	// an error wrapping ErrZeroArea when a sum in the tree has zero net area.
	Centroid() (Point, error)
}
