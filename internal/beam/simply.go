package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosection/internal/material"
	"github.com/alexiusacademia/gosection/internal/section"
)

// DefaultDeflectionLimit is the span/deflection ratio used when none is given
const DefaultDeflectionLimit = 250.0

// Result holds the elastic response of a simply supported beam with a
// midspan point load. Units follow the inputs.
type Result struct {
	C             float64 // Extreme fibre distance from y = 0
	MaxMoment     float64 // F·L/4
	MaxDeflection float64 // at midspan, negative = downward
	MaxStress     float64 // bending stress at the extreme fibre
}

// SimplySupportedPointLoad computes the response of a simply supported beam
// of span l and modulus e under a midspan point load f. Only the section's
// moment and bounding box are used.
func SimplySupportedPointLoad(s section.Shape, l, e, f float64) (*Result, error) {
	if l <= 0 {
		return nil, fmt.Errorf("invalid span: L=%g", l)
	}
	if e <= 0 {
		return nil, fmt.Errorf("invalid modulus of elasticity: E=%g", e)
	}

	i := s.Moment()
	if i == 0 {
		return nil, fmt.Errorf("section has zero moment of inertia")
	}

	result := &Result{
		C:         section.ExtremeFibre(s.BoundingBox()),
		MaxMoment: f * l / 4,
	}
	result.MaxDeflection = -f * math.Pow(l, 3) / (48 * e * i)
	result.MaxStress = result.MaxMoment * result.C / i

	return result, nil
}

// DeflectionAt returns the deflection at position x of a simply supported
// beam of span l and stiffness e·i under a midspan point load f.
// Outside the span it is zero.
func DeflectionAt(x, l, e, i, f float64) float64 {
	if x <= 0 || x >= l {
		return 0
	}
	if x > l/2 {
		x = l - x
	}
	return -f * x * (3*l*l - 4*x*x) / (48 * e * i)
}

// DeflectionProfile samples the deflected shape at n+1 evenly spaced points
// from support to support
func DeflectionProfile(s section.Shape, l, e, f float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("profile needs at least 2 segments, got %d", n)
	}
	if _, err := SimplySupportedPointLoad(s, l, e, f); err != nil {
		return nil, err
	}

	i := s.Moment()
	profile := make([]float64, n+1)
	for k := range profile {
		profile[k] = DeflectionAt(l*float64(k)/float64(n), l, e, i, f)
	}
	return profile, nil
}

// CheckInput describes a steel beam check in SI units
type CheckInput struct {
	Section  section.Shape // dimensions in m
	Material material.Material

	Span float64 // m
	Load float64 // midspan point load (N)

	// Allowed span/deflection ratio, DefaultDeflectionLimit when zero
	DeflectionLimit float64
}

// CheckResult extends the elastic response with serviceability and
// strength checks
type CheckResult struct {
	Result

	Mass   float64 // kg
	Weight float64 // N

	Utilization         float64 // MaxStress / Yield
	AllowableDeflection float64 // m
	DeflectionRatio     float64 // Span / |MaxDeflection|
	StressOK            bool
	DeflectionOK        bool
	Message             string
}

// Check runs the point load formula and compares it against the material
// yield strength and the deflection limit
func Check(in CheckInput) (*CheckResult, error) {
	if in.Section == nil {
		return nil, fmt.Errorf("beam check needs a section")
	}

	res, err := SimplySupportedPointLoad(in.Section, in.Span, in.Material.E, in.Load)
	if err != nil {
		return nil, err
	}

	limit := in.DeflectionLimit
	if limit <= 0 {
		limit = DefaultDeflectionLimit
	}

	result := &CheckResult{Result: *res}
	result.Mass = in.Material.LinearMass(in.Section.Area()) * in.Span
	result.Weight = result.Mass * material.Gravity

	if in.Material.Yield > 0 {
		result.Utilization = math.Abs(result.MaxStress) / in.Material.Yield
	}
	result.StressOK = result.Utilization <= 1

	result.AllowableDeflection = in.Span / limit
	if result.MaxDeflection != 0 {
		result.DeflectionRatio = in.Span / math.Abs(result.MaxDeflection)
	} else {
		result.DeflectionRatio = math.Inf(1)
	}
	result.DeflectionOK = math.Abs(result.MaxDeflection) <= result.AllowableDeflection

	// Build message
	switch {
	case result.StressOK && result.DeflectionOK:
		result.Message = fmt.Sprintf("Beam OK - stress at %.0f%% of yield, deflection L/%.0f", result.Utilization*100, result.DeflectionRatio)
	case !result.StressOK && !result.DeflectionOK:
		result.Message = "Beam inadequate - yield strength and deflection limit exceeded"
	case !result.StressOK:
		result.Message = fmt.Sprintf("Beam inadequate - stress at %.0f%% of yield", result.Utilization*100)
	default:
		result.Message = fmt.Sprintf("Beam inadequate - deflection L/%.0f exceeds L/%.0f", result.DeflectionRatio, limit)
	}

	return result, nil
}
