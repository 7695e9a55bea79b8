package section

import (
	"fmt"
	"math"
)

// Patch is one axis-aligned rectangle of a decomposed section together with
// the net weight it carries (1 for material, -1 for a hole).
type Patch struct {
	Box    Box
	Weight float64
}

// Area returns the signed area contributed by the patch
func (p Patch) Area() float64 {
	return p.Box.Width() * p.Box.Height() * p.Weight
}

// UnsupportedShapeError is returned by Patches for shapes that are neither
// built-in nodes nor Composite values.
type UnsupportedShapeError struct {
	Shape Shape
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("cannot decompose shape of type %T", e.Shape)
}

// transform maps a point p to (p.X*sx + tx, p.Y*sy + ty) and carries the
// accumulated weight
type transform struct {
	sx, sy float64
	tx, ty float64
	w      float64
}

var identity = transform{sx: 1, sy: 1, w: 1}

// Patches flattens a shape tree into the weighted rectangles it is made of.
// The result describes real geometry (scaling moves offsets too), which makes
// it suitable for drawing; the property laws are not evaluated here.
func Patches(s Shape) ([]Patch, error) {
	var patches []Patch
	if err := collectPatches(s, identity, &patches); err != nil {
		return nil, err
	}
	return patches, nil
}

func collectPatches(s Shape, t transform, out *[]Patch) error {
	switch n := s.(type) {
	case unitSquare:
		box := n.BoundingBox()
		*out = append(*out, Patch{
			Box:    normalizeBox(t.apply(box.Min), t.apply(box.Max)),
			Weight: t.w,
		})
		return nil

	case shifted:
		// Offset is applied first, then the outer map
		inner := t
		inner.tx += n.dx * t.sx
		inner.ty += n.dy * t.sy
		return collectPatches(n.child, inner, out)

	case scaled:
		inner := t
		inner.sx *= n.fx
		inner.sy *= n.fy
		return collectPatches(n.child, inner, out)

	case weighted:
		inner := t
		inner.w *= n.w
		return collectPatches(n.child, inner, out)

	case sum:
		if err := collectPatches(n.first, t, out); err != nil {
			return err
		}
		return collectPatches(n.second, t, out)

	case Composite:
		return collectPatches(n.Expression(), t, out)
	}

	return &UnsupportedShapeError{Shape: s}
}

func (t transform) apply(p Point) Point {
	return Point{X: p.X*t.sx + t.tx, Y: p.Y*t.sy + t.ty}
}

// normalizeBox orders the corners so that Min <= Max on both axes
func normalizeBox(a, b Point) Box {
	return Box{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// NetWeightAt sums the weights of all patches containing p.
// Positive values mean material, zero means void.
func NetWeightAt(patches []Patch, p Point) float64 {
	var total float64
	for _, patch := range patches {
		if patch.Box.Contains(p) {
			total += patch.Weight
		}
	}
	return total
}

// PatchesBounds returns the union of all patch boxes
func PatchesBounds(patches []Patch) Box {
	if len(patches) == 0 {
		return Box{}
	}
	bounds := patches[0].Box
	for _, p := range patches[1:] {
		bounds = bounds.Union(p.Box)
	}
	return bounds
}
