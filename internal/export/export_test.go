//go:build unit

package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"eventease-admin/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() export.Table {
	return export.Table{
		Title:   "Bookings Report",
		Columns: []string{"Event", "Venue", "Amount"},
		Rows: [][]string{
			{"Tech Summit", "Safari Park", "120000.00"},
			{"Book Fair", "", "15000.00"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{in: "", want: export.FormatCSV},
		{in: "csv", want: export.FormatCSV},
		{in: "XLSX", want: export.FormatXLSX},
		{in: "pdf", want: export.FormatPDF},
		{in: "docx", wantErr: true},
	}
	for _, tc := range cases {
		got, err := export.ParseFormat(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, export.ErrUnsupportedFormat, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatCSV, sampleTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Event", "Venue", "Amount"}, records[0])
	assert.Equal(t, []string{"Tech Summit", "Safari Park", "120000.00"}, records[1])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatXLSX, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Event", header)

	cell, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "120000.00", cell)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.FormatPDF, sampleTable()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is not a PDF")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", export.FormatCSV.ContentType())
	assert.Equal(t, "application/pdf", export.FormatPDF.ContentType())
	assert.Contains(t, export.FormatXLSX.ContentType(), "spreadsheet")
}
