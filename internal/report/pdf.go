package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gosection/internal/logging"
)

// Row is one label/value line of a report table
type Row struct {
	Label string
	Value string
}

// Table is a titled block of rows
type Table struct {
	Heading string
	Rows    []Row
}

// Report is the content of a PDF check report
type Report struct {
	Title   string
	Project string
	Author  string
	Date    time.Time
	Tables  []Table
	Notes   string
}

// WritePDF renders the report to an A4 PDF file
func WritePDF(path string, r Report) error {
	if r.Title == "" {
		r.Title = "Cross-Section Check"
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if r.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", r.Project)))
		pdf.Ln(6)
	}
	if r.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", r.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(10)

	for _, table := range r.Tables {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(table.Heading))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 10)
		for _, row := range table.Rows {
			pdf.CellFormat(80, 6, tr(row.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(90, 6, tr(row.Value), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	if r.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(r.Notes), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	logging.Logger().Debug("pdf report written", "file", path, "tables", len(r.Tables))
	return nil
}
