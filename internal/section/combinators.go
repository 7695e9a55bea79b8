package section

import "fmt"

// unitSquare is the only leaf: side 1, centered at the origin
type unitSquare struct{}

// Unit returns the unit square leaf
func Unit() Shape { return unitSquare{} }

func (unitSquare) Area() float64 { return 1 }

func (unitSquare) BoundingBox() Box {
	return Box{Min: Point{X: -0.5, Y: -0.5}, Max: Point{X: 0.5, Y: 0.5}}
}

// Moment of a unit square about its own centroidal axis
func (unitSquare) Moment() float64 { return 1. / 12 }

func (unitSquare) Centroid() (Point, error) { return Point{}, nil }

func (unitSquare) String() string { return "unit" }

// shifted translates its child by (dx, dy)
type shifted struct {
	child  Shape
	dx, dy float64
}

// Shift returns s translated by (dx, dy)
func Shift(s Shape, dx, dy float64) Shape {
	return shifted{child: s, dx: dx, dy: dy}
}

func (s shifted) Area() float64 { return s.child.Area() }

func (s shifted) BoundingBox() Box { return s.child.BoundingBox().Translate(s.dx, s.dy) }

// Moment applies the parallel-axis correction A·dy² for the vertical offset
func (s shifted) Moment() float64 {
	return s.child.Moment() + s.child.Area()*s.dy*s.dy
}

func (s shifted) Centroid() (Point, error) {
	c, err := s.child.Centroid()
	if err != nil {
		return Point{}, err
	}
	return Point{X: c.X + s.dx, Y: c.Y + s.dy}, nil
}

func (s shifted) String() string {
	return fmt.Sprintf("shift(%v, %g, %g)", s.child, s.dx, s.dy)
}

// scaled stretches its child about the origin by (fx, fy)
type scaled struct {
	child  Shape
	fx, fy float64
}

// Scale returns s scaled uniformly by f on both axes
func Scale(s Shape, f float64) Shape {
	return ScaleXY(s, f, f)
}

// ScaleXY returns s scaled by fx horizontally and fy vertically
func ScaleXY(s Shape, fx, fy float64) Shape {
	return scaled{child: s, fx: fx, fy: fy}
}

func (s scaled) Area() float64 { return s.child.Area() * s.fx * s.fy }

func (s scaled) BoundingBox() Box { return s.child.BoundingBox().Scale(s.fx, s.fy) }

// Moment integrates y² dA: y² picks up fy², dA picks up fx·fy
func (s scaled) Moment() float64 {
	return s.child.Moment() * s.fx * s.fy * s.fy * s.fy
}

// Centroid is passed through unscaled; exact only for children centered at
// the origin.
func (s scaled) Centroid() (Point, error) { return s.child.Centroid() }

func (s scaled) String() string {
	return fmt.Sprintf("scale(%v, %g, %g)", s.child, s.fx, s.fy)
}

// weighted multiplies the child's material by a signed scalar
type weighted struct {
	child Shape
	w     float64
}

// Weight returns s with its area and moment multiplied by w.
// A weight of -1 turns s into a hole.
func Weight(s Shape, w float64) Shape {
	return weighted{child: s, w: w}
}

// Negate is Weight(s, -1)
func Negate(s Shape) Shape { return Weight(s, -1) }

func (s weighted) Area() float64 { return s.child.Area() * s.w }

func (s weighted) BoundingBox() Box { return s.child.BoundingBox() }

func (s weighted) Moment() float64 { return s.child.Moment() * s.w }

func (s weighted) Centroid() (Point, error) { return s.child.Centroid() }

func (s weighted) String() string {
	return fmt.Sprintf("weight(%v, %g)", s.child, s.w)
}

// sum superposes two shapes expressed in the same frame
type sum struct {
	first, second Shape
}

// Add superposes a and b. Both must already be positioned in the shared
// frame; Add does not re-align them.
func Add(a, b Shape) Shape {
	return sum{first: a, second: b}
}

// Subtract is Add(a, Negate(b))
func Subtract(a, b Shape) Shape {
	return Add(a, Negate(b))
}

// Sum folds Add over shapes from left to right. It panics when called
// without shapes.
func Sum(shapes ...Shape) Shape {
	if len(shapes) == 0 {
		panic("section: Sum of no shapes")
	}
	acc := shapes[0]
	for _, s := range shapes[1:] {
		acc = Add(acc, s)
	}
	return acc
}

func (s sum) Area() float64 { return s.first.Area() + s.second.Area() }

func (s sum) BoundingBox() Box {
	return s.first.BoundingBox().Union(s.second.BoundingBox())
}

// Moment adds directly since both children share the axis y = 0
func (s sum) Moment() float64 { return s.first.Moment() + s.second.Moment() }

// Centroid is the area-weighted average of the children's centroids
func (s sum) Centroid() (Point, error) {
	c1, err := s.first.Centroid()
	if err != nil {
		return Point{}, err
	}
	c2, err := s.second.Centroid()
	if err != nil {
		return Point{}, err
	}

	a1, a2 := s.first.Area(), s.second.Area()
	total := a1 + a2
	if total == 0 {
		return Point{}, fmt.Errorf("sum of areas %g and %g: %w", a1, a2, ErrZeroArea)
	}

	return Point{
		X: (c1.X*a1 + c2.X*a2) / total,
		Y: (c1.Y*a1 + c2.Y*a2) / total,
	}, nil
}

func (s sum) String() string {
	return fmt.Sprintf("add(%v, %v)", s.first, s.second)
}

// Center shifts s by the negative of its centroid so that the result's
// centroid sits at the origin.
func Center(s Shape) (Shape, error) {
	c, err := s.Centroid()
	if err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}
	return Shift(s, -c.X, -c.Y), nil
}
