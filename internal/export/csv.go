package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the table's three rows as CSV in the fixed column order.
func WriteCSV(t Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	if err := cw.Write(t.VarNames); err != nil {
		return fmt.Errorf("write variable row: %w", err)
	}
	row := make([]string, len(t.Values))
	for i, v := range t.Values {
		row[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write value row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
