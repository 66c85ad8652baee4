package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Sheet1"

// WriteExcel streams the table as an .xlsx workbook: bold header row, the
// variable-name row, and the value row, with every column at width 18.
func WriteExcel(t Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]any, Columns)
	nameRow := make([]any, Columns)
	valueRow := make([]any, Columns)
	for i := 0; i < Columns; i++ {
		headerRow[i] = t.Headers[i]
		nameRow[i] = t.VarNames[i]
		valueRow[i] = t.Values[i]
	}
	if err := f.SetSheetRow(excelSheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	if err := f.SetSheetRow(excelSheet, "A2", &nameRow); err != nil {
		return fmt.Errorf("write variable row: %w", err)
	}
	if err := f.SetSheetRow(excelSheet, "A3", &valueRow); err != nil {
		return fmt.Errorf("write value row: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(excelSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	// 18 columns land exactly on A through R.
	if err := f.SetColWidth(excelSheet, "A", "R", 18); err != nil {
		return fmt.Errorf("set column widths: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
