package frame

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of an XLSX workbook into a Frame.
// If sheet is empty, the first sheet is used. The first row is the header;
// column types are inferred as in ReadCSV.
func ReadXLSX(r io.Reader, sheet string, opts ...ReadOption) (*Frame, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open XLSX: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("XLSX workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := make([]string, len(rows[0]))
	for j, name := range rows[0] {
		header[j] = strings.TrimSpace(name)
	}

	// GetRows trims trailing empty cells per row; pad back to header width.
	// A row wider than the header would lose cells, so it is an error.
	cells := make([][]string, len(header))
	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("sheet %q row %d: %d cells but %d header columns", sheet, i+2, len(row), len(header))
		}
		for j := range header {
			cell := ""
			if j < len(row) {
				cell = strings.TrimSpace(row[j])
			}
			cells[j] = append(cells[j], cell)
		}
	}

	return fromCells(header, cells, o.naValues)
}
