package material

import (
	"fmt"
	"sort"
	"strings"
)

// Unit constants. Everything is stored in SI base units (m, N, Pa, kg);
// multiply an input by its unit to convert, divide to print.
const (
	M  = 1.0
	CM = 0.01
	MM = 0.001

	N  = 1.0
	KN = 1e3

	Pa  = 1.0
	KPa = 1e3
	MPa = 1e6
	GPa = 1e9

	Kg = 1.0

	// Standard gravity (m/s²)
	Gravity = 9.81
)

// Material holds the constants needed for elastic beam checks
type Material struct {
	Name        string
	Description string

	E       float64 // Modulus of elasticity (Pa)
	Yield   float64 // Yield strength (Pa)
	Density float64 // kg/m³
}

// DefaultName is the material used when none is specified
const DefaultName = "S235"

// Materials is the built-in table of structural steels
var Materials = map[string]Material{
	"S235": {
		Name:        "S235",
		Description: "Structural steel S235 (E = 207 GPa)",
		E:           207 * GPa,
		Yield:       345 * MPa,
		Density:     7850,
	},
	"S275": {
		Name:        "S275",
		Description: "Structural steel S275",
		E:           210 * GPa,
		Yield:       275 * MPa,
		Density:     7850,
	},
	"S355": {
		Name:        "S355",
		Description: "Structural steel S355",
		E:           210 * GPa,
		Yield:       355 * MPa,
		Density:     7850,
	},
	"A36": {
		Name:        "A36",
		Description: "ASTM A36 carbon steel",
		E:           200 * GPa,
		Yield:       250 * MPa,
		Density:     7850,
	},
	"A992": {
		Name:        "A992",
		Description: "ASTM A992 wide-flange steel",
		E:           200 * GPa,
		Yield:       345 * MPa,
		Density:     7850,
	},
	"AL6061": {
		Name:        "AL6061",
		Description: "Aluminium alloy 6061-T6",
		E:           68.9 * GPa,
		Yield:       276 * MPa,
		Density:     2700,
	},
}

// UnknownMaterialError is returned by Lookup for names not in the table
type UnknownMaterialError struct {
	Name string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q (available: %s)", e.Name, strings.Join(Names(), ", "))
}

// Lookup finds a material by name, ignoring case
func Lookup(name string) (Material, error) {
	if m, ok := Materials[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return Material{}, &UnknownMaterialError{Name: name}
}

// Names returns the sorted material names
func Names() []string {
	names := make([]string, 0, len(Materials))
	for name := range Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// YieldStrain returns fy / E
func (m Material) YieldStrain() float64 {
	return m.Yield / m.E
}

// LinearMass returns the mass per unit length (kg/m) of a section with the
// given area (m²)
func (m Material) LinearMass(area float64) float64 {
	return area * m.Density
}
