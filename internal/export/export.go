// Package export renders report tables as CSV, Excel, or PDF, generated
// entirely from rows the report layer already holds in memory.
package export

import (
	"encoding/csv"
	"io"
	"strings"

	"eventease-admin/internal/pkg/errs"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnsupportedFormat = errs.New("unsupported export format")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

func (f Format) Extension() string {
	return string(f)
}

type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func Write(w io.Writer, f Format, t Table) error {
	switch f {
	case FormatXLSX:
		return writeXLSX(w, t)
	case FormatPDF:
		return writePDF(w, t)
	default:
		return writeCSV(w, t)
	}
}

func writeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return errs.Wrap(err, "failed to write CSV header")
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return errs.Wrap(err, "failed to write CSV row")
		}
	}
	cw.Flush()
	return errs.Wrap(cw.Error(), "failed to flush CSV")
}

func writeXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errs.Wrap(err, "failed to compute header cell")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return errs.Wrap(err, "failed to write header cell")
		}
	}
	for rowIdx, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return errs.Wrap(err, "failed to compute data cell")
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errs.Wrap(err, "failed to write data cell")
			}
		}
	}
	return errs.Wrap(f.Write(w), "failed to write XLSX")
}

func writePDF(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, t.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(t.Columns))

	pdf.SetFont("Helvetica", "B", 9)
	for _, header := range t.Columns {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return errs.Wrap(pdf.Output(w), "failed to write PDF")
}
