package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosection/internal/section"
)

// Governing check names reported by Design
const (
	GovernsStrength   = "strength"
	GovernsDeflection = "deflection"
)

// DesignResult holds the uniform scale that makes a profile just pass both
// checks, and the check of the scaled section
type DesignResult struct {
	Scale           float64 // governing factor applied to every dimension
	StrengthScale   float64 // factor needed for stress alone
	DeflectionScale float64 // factor needed for deflection alone
	Governs         string

	Section section.Shape // the scaled section
	Check   *CheckResult
}

// Design finds the smallest uniform scale factor k for in.Section such
// that the scaled section passes Check. Scaling every dimension by k
// multiplies c by k and I by k⁴, so stress falls with k³ and deflection
// with k⁴. A factor below 1 means the profile can shrink.
func Design(in CheckInput) (*DesignResult, error) {
	base, err := Check(in)
	if err != nil {
		return nil, err
	}

	result := &DesignResult{
		StrengthScale:   math.Cbrt(base.Utilization),
		DeflectionScale: math.Pow(math.Abs(base.MaxDeflection)/base.AllowableDeflection, 0.25),
	}
	if result.StrengthScale == 0 && result.DeflectionScale == 0 {
		return nil, fmt.Errorf("no load to design for")
	}

	result.Scale, result.Governs = result.StrengthScale, GovernsStrength
	if result.DeflectionScale > result.StrengthScale {
		result.Scale, result.Governs = result.DeflectionScale, GovernsDeflection
	}

	// Nudge past the boundary so rounding cannot fail the check
	result.Scale *= 1 + 1e-9

	in.Section = section.Scale(in.Section, result.Scale)
	result.Section = in.Section
	result.Check, err = Check(in)
	if err != nil {
		return nil, err
	}

	return result, nil
}
