// Package export renders detected table regions into spreadsheet form for
// review outside the pipeline.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/docfield/spatial/model"
)

// TablesXLSX returns an XLSX workbook (as bytes) with one sheet per table
// region: the header row first, data rows beneath, in detection order.
// Zero regions yields a workbook with a single empty sheet.
func TablesXLSX(regions []model.TableRegion) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, region := range regions {
		sheet := fmt.Sprintf("Table %d", i+1)
		if i == 0 {
			// Rename the default sheet rather than leaving it empty.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}

		if err := writeRow(f, sheet, 1, region.Headers); err != nil {
			return nil, err
		}
		for r, row := range region.Rows {
			if err := writeRow(f, sheet, r+2, row); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow writes one row of cells starting at column A of the given
// 1-based row number.
func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
