package section

import "fmt"

// Node kinds accepted in definition files
const (
	KindUnit      = "unit"
	KindRectangle = "rectangle"
	KindAngle     = "angle"
	KindIBeam     = "ibeam"
	KindShift     = "shift"
	KindScale     = "scale"
	KindWeight    = "weight"
	KindNegate    = "negate"
	KindSum       = "sum"
	KindSubtract  = "subtract"
	KindCenter    = "center"
)

// Definition describes a cross-section stored in a JSON file.
// Dimensions are in whatever consistent unit the caller chooses; the CLI
// uses millimetres.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Material name looked up in the material table (optional)
	Material string `json:"material,omitempty"`

	// Root of the shape expression
	Shape *Node `json:"shape"`
}

// Node is one element of a shape expression in a definition file.
// Only the fields relevant to Kind are read.
type Node struct {
	Kind string `json:"kind"`

	// rectangle / ibeam
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Flange float64 `json:"flange,omitempty"`
	Web    float64 `json:"web,omitempty"`

	// angle
	Side float64 `json:"side,omitempty"`
	Wall float64 `json:"wall,omitempty"`

	// shift
	DX float64 `json:"dx,omitempty"`
	DY float64 `json:"dy,omitempty"`

	// scale: either a uniform factor or per-axis fx/fy
	Factor *float64 `json:"factor,omitempty"`
	FX     float64  `json:"fx,omitempty"`
	FY     float64  `json:"fy,omitempty"`

	// weight
	Weight *float64 `json:"weight,omitempty"`

	// Single child for shift, scale, weight, negate and center
	Shape *Node `json:"shape,omitempty"`

	// Children for sum and subtract
	Shapes []*Node `json:"shapes,omitempty"`
}

// Validate checks the structure of the definition. Dimensions are not range
// checked: negative sizes simply produce negative areas.
func (d *Definition) Validate() error {
	if d.Shape == nil {
		return &ValidationError{"definition must have a shape"}
	}
	return d.Shape.validate("shape")
}

func (n *Node) validate(path string) error {
	switch n.Kind {
	case KindUnit, KindRectangle, KindAngle, KindIBeam:
		return nil

	case KindShift, KindNegate, KindCenter:
		return n.validateChild(path)

	case KindScale:
		if n.Factor == nil && (n.FX == 0 || n.FY == 0) {
			return &ValidationError{msg: fmt.Sprintf("%s: scale needs factor or both fx and fy", path)}
		}
		return n.validateChild(path)

	case KindWeight:
		if n.Weight == nil {
			return &ValidationError{msg: fmt.Sprintf("%s: weight node needs a weight", path)}
		}
		return n.validateChild(path)

	case KindSum:
		if len(n.Shapes) == 0 {
			return &ValidationError{msg: fmt.Sprintf("%s: sum needs at least one shape", path)}
		}
		return n.validateChildren(path)

	case KindSubtract:
		if len(n.Shapes) != 2 {
			return &ValidationError{msg: fmt.Sprintf("%s: subtract needs exactly 2 shapes, got %d", path, len(n.Shapes))}
		}
		return n.validateChildren(path)

	case "":
		return &ValidationError{msg: fmt.Sprintf("%s: missing kind", path)}
	}

	return &ValidationError{msg: fmt.Sprintf("%s: unknown kind %q", path, n.Kind)}
}

func (n *Node) validateChild(path string) error {
	if n.Shape == nil {
		return &ValidationError{msg: fmt.Sprintf("%s: %s needs a shape", path, n.Kind)}
	}
	return n.Shape.validate(path + "." + n.Kind)
}

func (n *Node) validateChildren(path string) error {
	for i, child := range n.Shapes {
		if child == nil {
			return &ValidationError{msg: fmt.Sprintf("%s: %s shape %d is empty", path, n.Kind, i+1)}
		}
		if err := child.validate(fmt.Sprintf("%s.%s[%d]", path, n.Kind, i)); err != nil {
			return err
		}
	}
	return nil
}

// ValidationError represents a definition validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
