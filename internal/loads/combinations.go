package loads

// LoadCombination represents a strength-design load combination
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// LoadCombinations are the basic strength-design combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations covers gravity loads only
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// PointLoads holds unfactored midspan point loads by load type (N)
type PointLoads struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// IsZero reports whether no load was given
func (p PointLoads) IsZero() bool {
	return p == PointLoads{}
}

// Factored calculates the factored load for the combination
func (lc LoadCombination) Factored(p PointLoads) float64 {
	return lc.Dead*p.Dead +
		lc.Live*p.Live +
		lc.Roof*p.Roof +
		lc.Wind*p.Wind +
		lc.Earthquake*p.Earthquake +
		lc.Rain*p.Rain
}

// Governing finds the maximum factored load from all combinations
func Governing(p PointLoads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		f := combo.Factored(p)
		if f > maxLoad {
			maxLoad = f
			governingCombo = combo
		}
	}

	return maxLoad, governingCombo
}
