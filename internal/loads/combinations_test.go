package loads

import (
	"math"
	"testing"
)

func TestFactored(t *testing.T) {
	p := PointLoads{Dead: 10, Live: 5, Wind: 2}
	tests := []struct {
		combo LoadCombination
		want  float64
	}{
		{LoadCombinations[0], 14},
		{LoadCombinations[1], 20},
		{LoadCombinations[2], 18},
		{LoadCombinations[3], 19},
		{LoadCombinations[5], 11},
	}
	for _, tt := range tests {
		t.Run(tt.combo.Description, func(t *testing.T) {
			if got := tt.combo.Factored(p); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Factored() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoverning(t *testing.T) {
	tests := []struct {
		name   string
		loads  PointLoads
		combos []LoadCombination
		want   float64
		wantID string
	}{
		{"dead and live", PointLoads{Dead: 10, Live: 5}, LoadCombinations, 20, "2"},
		{"dead only", PointLoads{Dead: 10}, LoadCombinations, 14, "1"},
		{"simplified", PointLoads{Dead: 10, Live: 5}, SimplifiedCombinations, 20, "2"},
		{"earthquake", PointLoads{Dead: 1, Earthquake: 50}, LoadCombinations, 51.2, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, combo := Governing(tt.loads, tt.combos)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Governing() = %v, want %v", got, tt.want)
			}
			if combo.ID != tt.wantID {
				t.Errorf("governing combination = %s, want %s", combo.ID, tt.wantID)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !(PointLoads{}).IsZero() {
		t.Error("empty loads should be zero")
	}
	if (PointLoads{Rain: 1}).IsZero() {
		t.Error("rain load should not be zero")
	}
}
