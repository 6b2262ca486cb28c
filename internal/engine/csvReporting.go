package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"smacross/types"
)

// writeSignalsCSVFile writes signals to a CSV file at the given path.
func writeSignalsCSVFile(path string, signals []types.Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create signals file: %w", err)
	}
	defer f.Close()

	return WriteSignalsCSV(f, signals)
}

// WriteSignalsCSV writes signals to any io.Writer as CSV, one row per signal
// in emission order.
func WriteSignalsCSV(w io.Writer, signals []types.Signal) error {
	cw := csv.NewWriter(w)

	header := []string{"index", "kind", "price", "size", "entry", "text"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range signals {
		record := []string{
			strconv.Itoa(i),
			string(s.Kind),
			s.Price.String(),
			s.Size.String(),
			s.Entry.String(),
			s.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
