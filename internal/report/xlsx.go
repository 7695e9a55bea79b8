package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosection/internal/logging"
	"github.com/alexiusacademia/gosection/internal/section"
)

// ResultsSheet is the sheet name used by WriteXLSX
const ResultsSheet = "Sections"

// PropertiesRow is one line of a results workbook
type PropertiesRow struct {
	Name       string
	Properties *section.Properties // nil when the row failed
	Error      string
}

var resultsHeader = []interface{}{
	"Name", "Area", "Moment", "Centroid X", "Centroid Y",
	"Width", "Height", "c", "Section modulus", "Radius of gyration", "Error",
}

// WriteXLSX writes the rows to a new workbook at path
func WriteXLSX(path string, rows []PropertiesRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &resultsHeader); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := []interface{}{row.Name}
		if p := row.Properties; p != nil {
			values = append(values,
				p.Area, p.Moment, p.CentroidX, p.CentroidY,
				p.Width, p.Height, p.C, p.SectionModulus, p.RadiusOfGyration, "")
		} else {
			values = append(values, "", "", "", "", "", "", "", "", "", row.Error)
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}

	logging.Logger().Debug("results workbook written", "file", path, "rows", len(rows))
	return nil
}

// RowError reports a spreadsheet row that could not be turned into a section
type RowError struct {
	Row int // 1-based, as shown by spreadsheet programs
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ReadSectionsXLSX reads section definitions from the first sheet of a
// workbook. The first row is a header; each following row holds
//
//	name, kind, p1, p2, p3, p4
//
// where kind is rectangle (width, height), angle (side, wall) or
// ibeam (width, height, flange, web). Rows that cannot be parsed are
// returned as *RowError values and skipped.
func ReadSectionsXLSX(path string) ([]section.Definition, []error, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("%s: empty sheet %q", path, sheet)
	}

	var defs []section.Definition
	var rowErrs []error
	for i := 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		def, err := parseSectionRow(rows[i])
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Row: i + 1, Err: err})
			logging.Logger().Debug("skipping workbook row", "row", i+1, "err", err)
			continue
		}
		defs = append(defs, def)
	}

	return defs, rowErrs, nil
}

func parseSectionRow(row []string) (section.Definition, error) {
	if len(row) < 2 {
		return section.Definition{}, fmt.Errorf("expected name and kind")
	}

	name := strings.TrimSpace(row[0])
	kind := strings.ToLower(strings.TrimSpace(row[1]))

	params := make([]float64, 0, 4)
	for _, cell := range row[2:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			break
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return section.Definition{}, fmt.Errorf("bad number %q", cell)
		}
		params = append(params, v)
	}

	need := func(n int) error {
		if len(params) < n {
			return fmt.Errorf("%s needs %d dimensions, got %d", kind, n, len(params))
		}
		return nil
	}

	node := &section.Node{}
	switch kind {
	case "rect", section.KindRectangle:
		if err := need(2); err != nil {
			return section.Definition{}, err
		}
		node.Kind = section.KindRectangle
		node.Width, node.Height = params[0], params[1]
	case "l", section.KindAngle:
		if err := need(2); err != nil {
			return section.Definition{}, err
		}
		node.Kind = section.KindAngle
		node.Side, node.Wall = params[0], params[1]
	case "i", section.KindIBeam:
		if err := need(4); err != nil {
			return section.Definition{}, err
		}
		node.Kind = section.KindIBeam
		node.Width, node.Height, node.Flange, node.Web = params[0], params[1], params[2], params[3]
	default:
		return section.Definition{}, fmt.Errorf("unknown section kind %q", row[1])
	}

	return section.Definition{Name: name, Shape: node}, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
