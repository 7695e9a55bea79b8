package section

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return diff <= tol*scale
}

func boxAlmostEqual(a, b Box) bool {
	return almostEqual(a.Min.X, b.Min.X, eps) && almostEqual(a.Min.Y, b.Min.Y, eps) &&
		almostEqual(a.Max.X, b.Max.X, eps) && almostEqual(a.Max.Y, b.Max.Y, eps)
}

func mustCentroid(t *testing.T, s Shape) Point {
	t.Helper()
	c, err := s.Centroid()
	if err != nil {
		t.Fatalf("Centroid() error = %v", err)
	}
	return c
}

// sampleShapes covers leaves, combinators and named sections
func sampleShapes(t *testing.T) map[string]Shape {
	t.Helper()
	angle, err := NewAngleSection(40, 5)
	if err != nil {
		t.Fatalf("NewAngleSection() error = %v", err)
	}
	return map[string]Shape{
		"unit":            Unit(),
		"rectangle":       NewRectangle(2, 1),
		"shifted rect":    Shift(NewRectangle(3, 4), 1, 2),
		"scaled unit":     ScaleXY(Unit(), 5, 0.5),
		"weighted rect":   Weight(NewRectangle(2, 2), 0.25),
		"ibeam":           NewIBeam(100, 100, 3, 3),
		"angle":           angle,
		"hollow square":   Subtract(NewRectangle(10, 10), NewRectangle(8, 8)),
		"offset triplets": Sum(Shift(Unit(), 0, 3), Shift(Unit(), 2, -1), Unit()),
	}
}

func TestUnitSquare(t *testing.T) {
	u := Unit()

	if got := u.Area(); got != 1 {
		t.Errorf("Area() = %v, want 1", got)
	}
	if got := u.Moment(); got != 1./12 {
		t.Errorf("Moment() = %v, want 1/12", got)
	}
	want := Box{Min: Point{-0.5, -0.5}, Max: Point{0.5, 0.5}}
	if got := u.BoundingBox(); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
	if got := mustCentroid(t, u); got != (Point{}) {
		t.Errorf("Centroid() = %v, want (0, 0)", got)
	}
}

func TestShiftParallelAxis(t *testing.T) {
	offsets := []struct{ dx, dy float64 }{
		{0, 1}, {0, -2.5}, {3, 0}, {-1, 7}, {0.1, 0.001},
	}
	for name, s := range sampleShapes(t) {
		for _, o := range offsets {
			t.Run(name, func(t *testing.T) {
				got := Shift(s, o.dx, o.dy)

				if got.Area() != s.Area() {
					t.Errorf("Area() = %v, want %v", got.Area(), s.Area())
				}
				wantI := s.Moment() + s.Area()*o.dy*o.dy
				if !almostEqual(got.Moment(), wantI, eps) {
					t.Errorf("Moment() = %v, want %v", got.Moment(), wantI)
				}
				if !boxAlmostEqual(got.BoundingBox(), s.BoundingBox().Translate(o.dx, o.dy)) {
					t.Errorf("BoundingBox() = %v, want %v translated by (%v, %v)",
						got.BoundingBox(), s.BoundingBox(), o.dx, o.dy)
				}

				c := mustCentroid(t, s)
				gc := mustCentroid(t, got)
				if !almostEqual(gc.X, c.X+o.dx, eps) || !almostEqual(gc.Y, c.Y+o.dy, eps) {
					t.Errorf("Centroid() = %v, want (%v, %v)", gc, c.X+o.dx, c.Y+o.dy)
				}
			})
		}
	}
}

func TestScaleLaws(t *testing.T) {
	factors := []struct{ fx, fy float64 }{
		{2, 1}, {1, 3}, {0.5, 0.25}, {10, 10}, {-1, 2},
	}
	for name, s := range sampleShapes(t) {
		for _, f := range factors {
			t.Run(name, func(t *testing.T) {
				got := ScaleXY(s, f.fx, f.fy)

				wantA := s.Area() * f.fx * f.fy
				if !almostEqual(got.Area(), wantA, eps) {
					t.Errorf("Area() = %v, want %v", got.Area(), wantA)
				}
				wantI := s.Moment() * f.fx * f.fy * f.fy * f.fy
				if !almostEqual(got.Moment(), wantI, eps) {
					t.Errorf("Moment() = %v, want %v", got.Moment(), wantI)
				}
				if !boxAlmostEqual(got.BoundingBox(), s.BoundingBox().Scale(f.fx, f.fy)) {
					t.Errorf("BoundingBox() = %v, want %v", got.BoundingBox(), s.BoundingBox().Scale(f.fx, f.fy))
				}
			})
		}
	}
}

func TestScaleUniform(t *testing.T) {
	s := NewRectangle(2, 1)
	got := Scale(s, 3)
	want := ScaleXY(s, 3, 3)

	if got.Area() != want.Area() || got.Moment() != want.Moment() {
		t.Errorf("Scale(s, 3) = (A=%v, I=%v), want (A=%v, I=%v)",
			got.Area(), got.Moment(), want.Area(), want.Moment())
	}
	if !almostEqual(got.Area(), 18, eps) {
		t.Errorf("Area() = %v, want 18", got.Area())
	}
}

func TestScaleKeepsChildCentroid(t *testing.T) {
	// The centroid is not scaled; shapes off the origin keep their offset.
	s := ScaleXY(Shift(Unit(), 1, 2), 3, 4)
	got := mustCentroid(t, s)
	if got != (Point{X: 1, Y: 2}) {
		t.Errorf("Centroid() = %v, want (1, 2)", got)
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		w    float64
	}{
		{"double", 2},
		{"quarter", 0.25},
		{"negate", -1},
		{"zero", 0},
	}
	s := Shift(NewRectangle(4, 2), 1, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weight(s, tt.w)
			if got.Area() != s.Area()*tt.w {
				t.Errorf("Area() = %v, want %v", got.Area(), s.Area()*tt.w)
			}
			if got.Moment() != s.Moment()*tt.w {
				t.Errorf("Moment() = %v, want %v", got.Moment(), s.Moment()*tt.w)
			}
			if got.BoundingBox() != s.BoundingBox() {
				t.Errorf("BoundingBox() = %v, want %v", got.BoundingBox(), s.BoundingBox())
			}
			if mustCentroid(t, got) != mustCentroid(t, s) {
				t.Errorf("Centroid() changed by weighting")
			}
		})
	}
}

func TestDoubleNegation(t *testing.T) {
	for name, s := range sampleShapes(t) {
		t.Run(name, func(t *testing.T) {
			got := Negate(Negate(s))
			if got.Area() != s.Area() {
				t.Errorf("Area() = %v, want %v", got.Area(), s.Area())
			}
			if got.Moment() != s.Moment() {
				t.Errorf("Moment() = %v, want %v", got.Moment(), s.Moment())
			}
		})
	}
}

func TestAddLaws(t *testing.T) {
	shapes := sampleShapes(t)
	for nameA, a := range shapes {
		for nameB, b := range shapes {
			t.Run(nameA+"+"+nameB, func(t *testing.T) {
				got := Add(a, b)

				if got.Area() != a.Area()+b.Area() {
					t.Errorf("Area() = %v, want %v", got.Area(), a.Area()+b.Area())
				}
				if got.Moment() != a.Moment()+b.Moment() {
					t.Errorf("Moment() = %v, want %v", got.Moment(), a.Moment()+b.Moment())
				}

				ba, bb := a.BoundingBox(), b.BoundingBox()
				want := Box{
					Min: Point{X: math.Min(ba.Min.X, bb.Min.X), Y: math.Min(ba.Min.Y, bb.Min.Y)},
					Max: Point{X: math.Max(ba.Max.X, bb.Max.X), Y: math.Max(ba.Max.Y, bb.Max.Y)},
				}
				if got.BoundingBox() != want {
					t.Errorf("BoundingBox() = %v, want %v", got.BoundingBox(), want)
				}
			})
		}
	}
}

func TestAddCentroid(t *testing.T) {
	// 2×1 rectangle at (0, 1) and unit square at (3, 0)
	s := Add(Shift(NewRectangle(2, 1), 0, 1), Shift(Unit(), 3, 0))
	got := mustCentroid(t, s)

	want := Point{X: (0*2 + 3*1) / 3., Y: (1*2 + 0*1) / 3.}
	if !almostEqual(got.X, want.X, eps) || !almostEqual(got.Y, want.Y, eps) {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestSubtractSelfHasNoCentroid(t *testing.T) {
	for name, s := range sampleShapes(t) {
		t.Run(name, func(t *testing.T) {
			diff := Subtract(s, s)
			if !almostEqual(diff.Area(), 0, eps) {
				t.Errorf("Area() = %v, want 0", diff.Area())
			}
			_, err := diff.Centroid()
			if !errors.Is(err, ErrZeroArea) {
				t.Errorf("Centroid() error = %v, want ErrZeroArea", err)
			}
		})
	}
}

func TestZeroAreaPropagates(t *testing.T) {
	hole := Subtract(Unit(), Unit())
	wrapped := []Shape{
		Shift(hole, 1, 1),
		ScaleXY(hole, 2, 2),
		Weight(hole, 3),
		Add(Unit(), hole),
	}
	for i, s := range wrapped {
		if _, err := s.Centroid(); !errors.Is(err, ErrZeroArea) {
			t.Errorf("shape %d: Centroid() error = %v, want ErrZeroArea", i, err)
		}
	}
}

func TestCenter(t *testing.T) {
	for name, s := range sampleShapes(t) {
		t.Run(name, func(t *testing.T) {
			centered, err := Center(s)
			if err != nil {
				t.Fatalf("Center() error = %v", err)
			}
			c := mustCentroid(t, centered)
			if !almostEqual(c.X, 0, eps) || !almostEqual(c.Y, 0, eps) {
				t.Errorf("Centroid() = %v, want (0, 0)", c)
			}
			if centered.Area() != s.Area() {
				t.Errorf("Area() = %v, want %v", centered.Area(), s.Area())
			}
		})
	}
}

func TestCenterZeroArea(t *testing.T) {
	_, err := Center(Subtract(NewRectangle(2, 1), NewRectangle(2, 1)))
	if !errors.Is(err, ErrZeroArea) {
		t.Errorf("Center() error = %v, want ErrZeroArea", err)
	}
}

func TestSumFold(t *testing.T) {
	a, b, c := Unit(), Shift(Unit(), 0, 2), Shift(Unit(), 0, -2)
	got := Sum(a, b, c)
	want := Add(Add(a, b), c)

	if got.Area() != want.Area() || got.Moment() != want.Moment() {
		t.Errorf("Sum() = (A=%v, I=%v), want (A=%v, I=%v)",
			got.Area(), got.Moment(), want.Area(), want.Moment())
	}
	if Sum(a) != a {
		t.Errorf("Sum(a) should return a unchanged")
	}
}

func TestSumEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sum() without shapes did not panic")
		}
	}()
	Sum()
}

func TestImmutability(t *testing.T) {
	base := NewRectangle(2, 1)
	area, moment := base.Area(), base.Moment()

	_ = Shift(base, 10, 10)
	_ = ScaleXY(base, 3, 3)
	_ = Negate(base)
	_ = Add(base, base)

	if base.Area() != area || base.Moment() != moment {
		t.Errorf("combinators modified their input")
	}
}

func TestExpressionString(t *testing.T) {
	s := Shift(ScaleXY(Unit(), 2, 1), 0, 1)
	if got, want := toString(s), "shift(scale(unit, 2, 1), 0, 1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	neg := toString(Subtract(Unit(), Unit()))
	if !strings.HasPrefix(neg, "add(unit, weight(unit, -1))") {
		t.Errorf("String() = %q", neg)
	}
}

func toString(s Shape) string {
	if str, ok := s.(interface{ String() string }); ok {
		return str.String()
	}
	return ""
}
