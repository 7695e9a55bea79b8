package section

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Definition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a JSON section definition
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Build turns the definition into a shape
func (d *Definition) Build() (Shape, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.Shape.Build()
}

// Build turns the node and its children into a shape
func (n *Node) Build() (Shape, error) {
	switch n.Kind {
	case KindUnit:
		return Unit(), nil

	case KindRectangle:
		return NewRectangle(n.Width, n.Height), nil

	case KindAngle:
		return NewAngleSection(n.Side, n.Wall)

	case KindIBeam:
		return NewIBeam(n.Width, n.Height, n.Flange, n.Web), nil
	}

	if n.Kind == KindSum || n.Kind == KindSubtract {
		children := make([]Shape, 0, len(n.Shapes))
		for _, c := range n.Shapes {
			if c == nil {
				return nil, &ValidationError{msg: fmt.Sprintf("%s: empty shape", n.Kind)}
			}
			s, err := c.Build()
			if err != nil {
				return nil, err
			}
			children = append(children, s)
		}
		if n.Kind == KindSubtract {
			if len(children) != 2 {
				return nil, &ValidationError{msg: "subtract needs exactly 2 shapes"}
			}
			return Subtract(children[0], children[1]), nil
		}
		if len(children) == 0 {
			return nil, &ValidationError{msg: "sum needs at least one shape"}
		}
		return Sum(children...), nil
	}

	if n.Shape == nil {
		return nil, &ValidationError{msg: fmt.Sprintf("%s needs a shape", n.Kind)}
	}
	child, err := n.Shape.Build()
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case KindShift:
		return Shift(child, n.DX, n.DY), nil
	case KindScale:
		if n.Factor != nil {
			return Scale(child, *n.Factor), nil
		}
		return ScaleXY(child, n.FX, n.FY), nil
	case KindWeight:
		if n.Weight == nil {
			return nil, &ValidationError{msg: "weight node needs a weight"}
		}
		return Weight(child, *n.Weight), nil
	case KindNegate:
		return Negate(child), nil
	case KindCenter:
		return Center(child)
	}

	return nil, &ValidationError{msg: fmt.Sprintf("unknown kind %q", n.Kind)}
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64
	Height float64
	Area   float64

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Bending about the axis y = 0
	Moment           float64 // Second moment of area
	C                float64 // Extreme fibre distance from y = 0
	SectionModulus   float64 // I / c
	RadiusOfGyration float64 // sqrt(|I / A|)
}

// Summarize computes the properties of a shape in one pass over the
// capability contract
func Summarize(s Shape) (*Properties, error) {
	centroid, err := s.Centroid()
	if err != nil {
		return nil, err
	}

	bb := s.BoundingBox()
	props := &Properties{
		Width:     bb.Width(),
		Height:    bb.Height(),
		Area:      s.Area(),
		CentroidX: centroid.X,
		CentroidY: centroid.Y,
		MinX:      bb.Min.X,
		MaxX:      bb.Max.X,
		MinY:      bb.Min.Y,
		MaxY:      bb.Max.Y,
		Moment:    s.Moment(),
	}

	props.C = ExtremeFibre(bb)
	if props.C > 0 {
		props.SectionModulus = props.Moment / props.C
	}
	if props.Area != 0 {
		props.RadiusOfGyration = math.Sqrt(math.Abs(props.Moment / props.Area))
	}

	return props, nil
}

// ExtremeFibre returns the largest distance from the axis y = 0 to the
// box's vertical extent
func ExtremeFibre(bb Box) float64 {
	return math.Max(math.Abs(bb.Min.Y), math.Abs(bb.Max.Y))
}
