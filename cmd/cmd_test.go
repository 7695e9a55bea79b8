package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosection/internal/section"
)

func TestShapeFlagsDefinition(t *testing.T) {
	tests := []struct {
		name     string
		flags    shapeFlags
		wantKind string
		wantName string
		wantErr  bool
	}{
		{"rect", shapeFlags{kind: "rect", width: 200, height: 400}, section.KindRectangle, "R 200x400", false},
		{"angle", shapeFlags{kind: "Angle", side: 40, wall: 5}, section.KindAngle, "L 40x5", false},
		{"ibeam", shapeFlags{kind: "ibeam", width: 100, height: 100, flange: 3, web: 3}, section.KindIBeam, "I 100x100", false},
		{"rect missing height", shapeFlags{kind: "rect", width: 200}, "", "", true},
		{"angle wall too thick", shapeFlags{kind: "angle", side: 5, wall: 10}, "", "", true},
		{"ibeam flanges too thick", shapeFlags{kind: "ibeam", width: 100, height: 10, flange: 5, web: 3}, "", "", true},
		{"unknown", shapeFlags{kind: "circle"}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := tt.flags.definition()
			if (err != nil) != tt.wantErr {
				t.Fatalf("definition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if def.Shape.Kind != tt.wantKind || def.Name != tt.wantName {
				t.Errorf("definition() = %q %q, want %q %q", def.Name, def.Shape.Kind, tt.wantName, tt.wantKind)
			}
			if _, err := def.Build(); err != nil {
				t.Errorf("Build() error = %v", err)
			}
		})
	}
}

func TestShapeFlagsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.json")
	data := `{
  "name": "T-Section",
  "shape": {
    "kind": "sum",
    "shapes": [
      {"kind": "shift", "dy": 100, "shape": {"kind": "rectangle", "width": 200, "height": 20}},
      {"kind": "rectangle", "width": 10, "height": 180}
    ]
  }
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f := shapeFlags{file: path}
	def, err := f.definition()
	if err != nil {
		t.Fatalf("definition() error = %v", err)
	}
	s, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := s.Area(); got != 200*20+10*180 {
		t.Errorf("Area = %v, want %v", got, 200*20+10*180)
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	env := filepath.Join(t.TempDir(), "missing.env")
	rootCmd.SetArgs(append(args, "--env-file", env))
	return rootCmd.Execute()
}

func TestSectionAnalyzeCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ibeam.svg")
	err := execute(t, "section", "analyze",
		"--shape", "ibeam", "-b", "100", "--height", "100", "--flange", "3", "--web", "3",
		"--tree", "--diagram", "-o", out)
	if err != nil {
		t.Fatalf("section analyze error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("diagram not exported: %v", err)
	}
}

func TestSectionBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xlsx")
	out := filepath.Join(dir, "out.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"name", "kind", "p1", "p2", "p3", "p4"},
		{"R 200x400", "rect", 200, 400},
		{"L 40x0", "angle", 40, 0},
		{"bad", "circle", 10},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(in); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := execute(t, "section", "batch", "-f", in, "-o", out); err != nil {
		t.Fatalf("section batch error = %v", err)
	}

	res, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("results not written: %v", err)
	}
	defer res.Close()
	got, err := res.GetRows("Sections")
	if err != nil {
		t.Fatal(err)
	}
	// header + rectangle + failed angle; the unknown kind is skipped
	if len(got) != 3 {
		t.Errorf("got %d rows, want 3", len(got))
	}
}

func TestBeamCheckCommand(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "check.pdf")
	err := execute(t, "beam", "check",
		"--shape", "rect", "-b", "100", "--height", "200",
		"--span", "4", "--mass", "1000", "--material", "s355",
		"--plot", "--report", pdf, "--project", "Test")
	if err != nil {
		t.Fatalf("beam check error = %v", err)
	}
	if info, err := os.Stat(pdf); err != nil || info.Size() == 0 {
		t.Errorf("report not written: %v", err)
	}
}

func TestLoadCommand(t *testing.T) {
	if err := execute(t, "load", "--dead", "5", "--live", "3", "--all"); err != nil {
		t.Fatalf("load error = %v", err)
	}
}

func TestBeamDesignCommand(t *testing.T) {
	err := execute(t, "beam", "design",
		"--shape", "ibeam", "-b", "100", "--height", "100", "--flange", "3", "--web", "3",
		"--span", "4", "--load", "10", "--diagram")
	if err != nil {
		t.Fatalf("beam design error = %v", err)
	}
}
