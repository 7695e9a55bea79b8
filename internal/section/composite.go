package section

import "fmt"

// Composite is a named shape defined entirely by an expression over the
// unit square and the combinators.
type Composite interface {
	Shape
	Expression() Shape
}

// composite delegates every query to the defining expression
type composite struct {
	expr Shape
}

func (c composite) Area() float64            { return c.expr.Area() }
func (c composite) BoundingBox() Box         { return c.expr.BoundingBox() }
func (c composite) Moment() float64          { return c.expr.Moment() }
func (c composite) Centroid() (Point, error) { return c.expr.Centroid() }

// Expression returns the combinator tree the shape is built from
func (c composite) Expression() Shape { return c.expr }

// Rectangle is a solid rectangle centered at the origin
type Rectangle struct {
	composite
	width, height float64
}

// NewRectangle creates a width × height rectangle centered at the origin
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{
		composite: composite{expr: ScaleXY(Unit(), width, height)},
		width:     width,
		height:    height,
	}
}

// Width returns the horizontal side
func (r *Rectangle) Width() float64 { return r.width }

// Height returns the vertical side
func (r *Rectangle) Height() float64 { return r.height }

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%g × %g)", r.width, r.height)
}

// AngleSection is an equal-leg angle (L-profile) re-centered on its centroid.
//
// The outer square loses an inner square of side (side - wall) pushed into
// the upper right corner, leaving the legs along the left and bottom edges.
type AngleSection struct {
	composite
	side, wall float64
}

// NewAngleSection creates an angle with legs of length side and thickness
// wall. It fails when the net area is zero (wall = 0), since the centroid
// used for re-centering is then undefined.
func NewAngleSection(side, wall float64) (*AngleSection, error) {
	outer := NewRectangle(side, side)
	inner := Shift(NewRectangle(side-wall, side-wall), wall/2, wall/2)

	expr, err := Center(Subtract(outer, inner))
	if err != nil {
		return nil, fmt.Errorf("angle section %g/%g: %w", side, wall, err)
	}

	return &AngleSection{
		composite: composite{expr: expr},
		side:      side,
		wall:      wall,
	}, nil
}

// Side returns the leg length
func (a *AngleSection) Side() float64 { return a.side }

// Wall returns the leg thickness
func (a *AngleSection) Wall() float64 { return a.wall }

func (a *AngleSection) String() string {
	return fmt.Sprintf("AngleSection(%g, wall %g)", a.side, a.wall)
}

// IBeam is a doubly symmetric I-profile centered at the origin
type IBeam struct {
	composite
	width, height, flange, web float64
}

// NewIBeam creates an I-beam of overall width and height with flange
// thickness flange and web thickness web. Symmetric about the x-axis by
// construction, so no re-centering is applied.
func NewIBeam(width, height, flange, web float64) *IBeam {
	offset := (height - flange) / 2

	mid := NewRectangle(web, height-2*flange)
	top := Shift(NewRectangle(width, flange), 0, offset)
	bottom := Shift(NewRectangle(width, flange), 0, -offset)

	return &IBeam{
		composite: composite{expr: Sum(top, mid, bottom)},
		width:     width,
		height:    height,
		flange:    flange,
		web:       web,
	}
}

// Width returns the flange width
func (b *IBeam) Width() float64 { return b.width }

// Height returns the overall depth
func (b *IBeam) Height() float64 { return b.height }

// Flange returns the flange thickness
func (b *IBeam) Flange() float64 { return b.flange }

// Web returns the web thickness
func (b *IBeam) Web() float64 { return b.web }

func (b *IBeam) String() string {
	return fmt.Sprintf("IBeam(%g × %g, flange %g, web %g)", b.width, b.height, b.flange, b.web)
}
