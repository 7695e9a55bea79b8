package beam

import (
	"testing"

	"github.com/alexiusacademia/gosection/internal/material"
	"github.com/alexiusacademia/gosection/internal/section"
)

func TestDesign(t *testing.T) {
	mm := material.MM
	steel := material.Materials["S235"]

	tests := []struct {
		name    string
		load    float64
		limit   float64
		governs string
	}{
		{"deflection governs", 1000 * material.Gravity, 0, GovernsDeflection},
		{"strength governs", 1000 * material.Gravity, 10, GovernsStrength},
		{"oversized profile shrinks", 100, 0, GovernsDeflection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := CheckInput{
				Section:         section.NewIBeam(100*mm, 100*mm, 3*mm, 3*mm),
				Material:        steel,
				Span:            4,
				Load:            tt.load,
				DeflectionLimit: tt.limit,
			}
			got, err := Design(in)
			if err != nil {
				t.Fatalf("Design() error = %v", err)
			}
			if got.Governs != tt.governs {
				t.Errorf("Governs = %q, want %q (strength %v, deflection %v)",
					got.Governs, tt.governs, got.StrengthScale, got.DeflectionScale)
			}
			if !got.Check.StressOK || !got.Check.DeflectionOK {
				t.Errorf("scaled section fails: %s", got.Check.Message)
			}

			// The governing check sits right at its limit
			var at float64
			if tt.governs == GovernsStrength {
				at = got.Check.Utilization
			} else {
				at = -got.Check.MaxDeflection / got.Check.AllowableDeflection
			}
			if !relEqual(at, 1, 1e-6) {
				t.Errorf("governing ratio = %v, want 1", at)
			}

			// Uniform scale: I grows with k⁴
			base := in.Section.Moment()
			if want := base * got.Scale * got.Scale * got.Scale * got.Scale; !relEqual(got.Section.Moment(), want, 1e-12) {
				t.Errorf("scaled moment = %v, want %v", got.Section.Moment(), want)
			}
		})
	}
}

func TestDesignNoLoad(t *testing.T) {
	_, err := Design(CheckInput{
		Section:  section.NewRectangle(0.1, 0.1),
		Material: material.Materials["S235"],
		Span:     1,
	})
	if err == nil {
		t.Error("expected error without load")
	}
}
